package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

// BudgetRepository is the pgx implementation of port.BudgetRepository.
// Upsell and item lines are stored as jsonb documents on the budget row.
type BudgetRepository struct {
	pool *pgxpool.Pool
}

func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = `
	id, clinic_id, patient_id, type, ortho_type, model,
	monthly_value, installments, total, cash_value,
	upsells, items, due_day, is_cash, is_plan_complement,
	notes, status, created_by, created_at`

func (repo *BudgetRepository) Create(ctx context.Context, b model.Budget) error {
	upsells, err := json.Marshal(b.Upsells)
	if err != nil {
		return fmt.Errorf("marshal budget upsells: %w", err)
	}
	items, err := json.Marshal(b.Items)
	if err != nil {
		return fmt.Errorf("marshal budget items: %w", err)
	}

	_, err = repo.pool.Exec(ctx, `
		INSERT INTO budgets (
			id, clinic_id, patient_id, type, ortho_type, model,
			monthly_value, installments, total, cash_value,
			upsells, items, due_day, is_cash, is_plan_complement,
			notes, status, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		b.ID, b.ClinicID, b.PatientID, string(b.Type), string(b.OrthoType), b.Model,
		b.MonthlyValue, b.Installments, b.Total, b.CashValue,
		upsells, items, b.DueDay, b.IsCash, b.IsPlanComplement,
		b.Notes, string(b.Status), b.CreatedBy, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

func scanBudget(row pgx.Row) (model.Budget, error) {
	var (
		b                             model.Budget
		budgetType, orthoType, status string
		upsells, items                []byte
	)
	err := row.Scan(
		&b.ID, &b.ClinicID, &b.PatientID, &budgetType, &orthoType, &b.Model,
		&b.MonthlyValue, &b.Installments, &b.Total, &b.CashValue,
		&upsells, &items, &b.DueDay, &b.IsCash, &b.IsPlanComplement,
		&b.Notes, &status, &b.CreatedBy, &b.CreatedAt,
	)
	if err != nil {
		return model.Budget{}, err
	}
	b.Type = valueobject.BudgetType(budgetType)
	b.OrthoType = valueobject.OrthoType(orthoType)
	b.Status = valueobject.BudgetStatus(status)
	if len(upsells) > 0 {
		if err := json.Unmarshal(upsells, &b.Upsells); err != nil {
			return model.Budget{}, fmt.Errorf("unmarshal budget upsells: %w", err)
		}
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &b.Items); err != nil {
			return model.Budget{}, fmt.Errorf("unmarshal budget items: %w", err)
		}
	}
	return b, nil
}

func (repo *BudgetRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Budget, error) {
	row := repo.pool.QueryRow(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	b, err := scanBudget(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Budget{}, model.ErrNotFound
	}
	if err != nil {
		return model.Budget{}, fmt.Errorf("select budget: %w", err)
	}
	return b, nil
}

func (repo *BudgetRepository) List(ctx context.Context, clinicID uuid.UUID) ([]model.Budget, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE clinic_id = $1 ORDER BY created_at DESC`,
		clinicID,
	)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var out []model.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus flips a pending budget; approved and cancelled rows never
// change again.
func (repo *BudgetRepository) UpdateStatus(ctx context.Context, clinicID, id uuid.UUID, to valueobject.BudgetStatus) error {
	tag, err := repo.pool.Exec(ctx,
		`UPDATE budgets SET status = $1
		 WHERE clinic_id = $2 AND id = $3 AND status = 'pending'`,
		string(to), clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("update budget status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrConcurrentModification
	}
	return nil
}

func (repo *BudgetRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM budgets WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
