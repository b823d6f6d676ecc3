package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
	pgutil "github.com/dentara/dentara/pkg/postgres"
)

// OrthoContractRepository is the pgx implementation of
// port.OrthoContractRepository.
type OrthoContractRepository struct {
	pool *pgxpool.Pool
}

func NewOrthoContractRepository(pool *pgxpool.Pool) *OrthoContractRepository {
	return &OrthoContractRepository{pool: pool}
}

const contractColumns = `
	id, clinic_id, patient_id, professional_id, budget_id,
	start_date, monthly_amount, total_months, due_day,
	status, notes, created_at`

func scanContract(row pgx.Row) (model.OrthoContract, error) {
	var (
		c      model.OrthoContract
		status string
	)
	err := row.Scan(
		&c.ID, &c.ClinicID, &c.PatientID, &c.ProfessionalID, &c.BudgetID,
		&c.StartDate, &c.MonthlyAmount, &c.TotalMonths, &c.DueDay,
		&status, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		return model.OrthoContract{}, err
	}
	if c.Status, err = valueobject.NewOrthoContractStatus(status); err != nil {
		return model.OrthoContract{}, err
	}
	return c, nil
}

// CreateWithSchedule inserts the contract and its receivable batch in one
// transaction so a half-created contract can never be observed.
func (repo *OrthoContractRepository) CreateWithSchedule(ctx context.Context, c model.OrthoContract, batch []model.Receivable) error {
	return pgutil.WithTransaction(ctx, repo.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO ortho_contracts (
				id, clinic_id, patient_id, professional_id, budget_id,
				start_date, monthly_amount, total_months, due_day,
				status, notes, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			c.ID, c.ClinicID, c.PatientID, c.ProfessionalID, c.BudgetID,
			c.StartDate, c.MonthlyAmount, c.TotalMonths, c.DueDay,
			c.Status.String(), c.Notes, c.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert contract: %w", err)
		}
		return insertReceivableBatch(ctx, tx, batch)
	})
}

func (repo *OrthoContractRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.OrthoContract, error) {
	row := repo.pool.QueryRow(ctx,
		`SELECT `+contractColumns+` FROM ortho_contracts WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	c, err := scanContract(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.OrthoContract{}, model.ErrNotFound
	}
	if err != nil {
		return model.OrthoContract{}, fmt.Errorf("select contract: %w", err)
	}
	return c, nil
}

func (repo *OrthoContractRepository) List(ctx context.Context, clinicID uuid.UUID) ([]model.OrthoContract, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT `+contractColumns+` FROM ortho_contracts
		 WHERE clinic_id = $1 ORDER BY created_at DESC`,
		clinicID,
	)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var out []model.OrthoContract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Cancel flips the contract and closes its remaining open receivables in
// one transaction. The contract update is conditional on it still being
// active.
func (repo *OrthoContractRepository) Cancel(ctx context.Context, c model.OrthoContract) (int, error) {
	var closed int
	err := pgutil.WithTransaction(ctx, repo.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE ortho_contracts SET status = $1
			 WHERE clinic_id = $2 AND id = $3 AND status = 'active'`,
			c.Status.String(), c.ClinicID, c.ID,
		)
		if err != nil {
			return fmt.Errorf("update contract: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrConcurrentModification
		}

		flipped, err := tx.Exec(ctx,
			`UPDATE receivables SET status = 'renegotiated'
			 WHERE clinic_id = $1 AND origin_type = 'ortho_contract' AND origin_id = $2
			   AND status IN ('open', 'overdue')`,
			c.ClinicID, c.ID,
		)
		if err != nil {
			return fmt.Errorf("close receivables: %w", err)
		}
		closed = int(flipped.RowsAffected())
		return nil
	})
	return closed, err
}
