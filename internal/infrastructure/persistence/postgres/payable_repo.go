package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
	"github.com/dentara/dentara/internal/domain/valueobject"
	pgutil "github.com/dentara/dentara/pkg/postgres"
)

// PayableRepository is the pgx implementation of port.PayableRepository.
type PayableRepository struct {
	pool *pgxpool.Pool
}

func NewPayableRepository(pool *pgxpool.Pool) *PayableRepository {
	return &PayableRepository{pool: pool}
}

const payableColumns = `
	id, clinic_id, supplier, category_id, cost_center_id,
	due_date, amount, status, paid_at, description, created_at`

func scanPayable(row pgx.Row) (model.Payable, error) {
	var (
		p      model.Payable
		status string
	)
	err := row.Scan(
		&p.ID, &p.ClinicID, &p.Supplier, &p.CategoryID, &p.CostCenterID,
		&p.DueDate, &p.Amount, &status, &p.PaidAt, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		return model.Payable{}, err
	}
	if p.Status, err = valueobject.NewPayableStatus(status); err != nil {
		return model.Payable{}, err
	}
	return p, nil
}

func (repo *PayableRepository) Create(ctx context.Context, p model.Payable) error {
	_, err := repo.pool.Exec(ctx,
		`INSERT INTO payables (
			id, clinic_id, supplier, category_id, cost_center_id,
			due_date, amount, status, paid_at, description, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.ClinicID, p.Supplier, p.CategoryID, p.CostCenterID,
		p.DueDate, p.Amount, p.Status.String(), p.PaidAt, p.Description, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payable: %w", err)
	}
	return nil
}

func (repo *PayableRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Payable, error) {
	row := repo.pool.QueryRow(ctx,
		`SELECT `+payableColumns+` FROM payables WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	p, err := scanPayable(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Payable{}, model.ErrNotFound
	}
	if err != nil {
		return model.Payable{}, fmt.Errorf("select payable: %w", err)
	}
	return p, nil
}

func (repo *PayableRepository) ListByStatus(ctx context.Context, clinicID uuid.UUID, status *valueobject.PayableStatus) ([]model.Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payables WHERE clinic_id = $1`
	args := []any{clinicID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, status.String())
	}
	query += ` ORDER BY due_date, created_at`

	rows, err := repo.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()

	var out []model.Payable
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payable: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SettleWithTransaction applies the paid state and records the OUT
// transaction atomically.
func (repo *PayableRepository) SettleWithTransaction(ctx context.Context, p model.Payable, cashTx model.FinancialTransaction) error {
	return pgutil.WithTransaction(ctx, repo.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE payables SET status = $1, paid_at = $2
			 WHERE clinic_id = $3 AND id = $4 AND status IN ('open', 'overdue')`,
			p.Status.String(), p.PaidAt, p.ClinicID, p.ID,
		)
		if err != nil {
			return fmt.Errorf("update payable: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrConcurrentModification
		}
		return insertTransactionTx(ctx, tx, cashTx)
	})
}

func (repo *PayableRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM payables WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete payable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (repo *PayableRepository) MarkOverdue(ctx context.Context, today time.Time) ([]port.OverdueCount, error) {
	rows, err := repo.pool.Query(ctx,
		`UPDATE payables SET status = 'overdue'
		 WHERE status = 'open' AND due_date < $1
		 RETURNING clinic_id`,
		today,
	)
	if err != nil {
		return nil, fmt.Errorf("mark payables overdue: %w", err)
	}
	defer rows.Close()

	counts := map[uuid.UUID]int{}
	for rows.Next() {
		var clinicID uuid.UUID
		if err := rows.Scan(&clinicID); err != nil {
			return nil, fmt.Errorf("scan clinic: %w", err)
		}
		counts[clinicID]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]port.OverdueCount, 0, len(counts))
	for clinicID, n := range counts {
		out = append(out, port.OverdueCount{ClinicID: clinicID, Payables: n})
	}
	return out, nil
}
