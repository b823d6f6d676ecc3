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

// ReceivableRepository is the pgx implementation of
// port.ReceivableRepository. Status flips are conditional on the row
// still being open or overdue; a miss means another actor won the race.
type ReceivableRepository struct {
	pool *pgxpool.Pool
}

func NewReceivableRepository(pool *pgxpool.Pool) *ReceivableRepository {
	return &ReceivableRepository{pool: pool}
}

const receivableColumns = `
	id, clinic_id, patient_id, origin_type, origin_id,
	installment_num, total_installments, due_date, amount,
	status, paid_amount, paid_at, description, created_at`

const insertReceivableSQL = `
	INSERT INTO receivables (
		id, clinic_id, patient_id, origin_type, origin_id,
		installment_num, total_installments, due_date, amount,
		status, paid_amount, paid_at, description, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func receivableArgs(r model.Receivable) []any {
	return []any{
		r.ID, r.ClinicID, r.PatientID, string(r.OriginType), r.OriginID,
		r.InstallmentNum, r.TotalInstallments, r.DueDate, r.Amount,
		r.Status.String(), r.PaidAmount, r.PaidAt, r.Description, r.CreatedAt,
	}
}

func scanReceivable(row pgx.Row) (model.Receivable, error) {
	var (
		r      model.Receivable
		origin string
		status string
	)
	err := row.Scan(
		&r.ID, &r.ClinicID, &r.PatientID, &origin, &r.OriginID,
		&r.InstallmentNum, &r.TotalInstallments, &r.DueDate, &r.Amount,
		&status, &r.PaidAmount, &r.PaidAt, &r.Description, &r.CreatedAt,
	)
	if err != nil {
		return model.Receivable{}, err
	}
	r.OriginType = valueobject.OriginType(origin)
	if r.Status, err = valueobject.NewReceivableStatus(status); err != nil {
		return model.Receivable{}, err
	}
	return r, nil
}

func (repo *ReceivableRepository) Create(ctx context.Context, r model.Receivable) error {
	if _, err := repo.pool.Exec(ctx, insertReceivableSQL, receivableArgs(r)...); err != nil {
		return fmt.Errorf("insert receivable: %w", err)
	}
	return nil
}

func (repo *ReceivableRepository) CreateBatch(ctx context.Context, batch []model.Receivable) error {
	return pgutil.WithTransaction(ctx, repo.pool, func(tx pgx.Tx) error {
		return insertReceivableBatch(ctx, tx, batch)
	})
}

func insertReceivableBatch(ctx context.Context, tx pgx.Tx, batch []model.Receivable) error {
	b := &pgx.Batch{}
	for _, r := range batch {
		b.Queue(insertReceivableSQL, receivableArgs(r)...)
	}
	results := tx.SendBatch(ctx, b)
	defer results.Close()
	for range batch {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert receivable batch: %w", err)
		}
	}
	return nil
}

func (repo *ReceivableRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Receivable, error) {
	row := repo.pool.QueryRow(ctx,
		`SELECT `+receivableColumns+` FROM receivables WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	r, err := scanReceivable(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Receivable{}, model.ErrNotFound
	}
	if err != nil {
		return model.Receivable{}, fmt.Errorf("select receivable: %w", err)
	}
	return r, nil
}

func (repo *ReceivableRepository) ListByStatus(ctx context.Context, clinicID uuid.UUID, status *valueobject.ReceivableStatus) ([]model.Receivable, error) {
	query := `SELECT ` + receivableColumns + ` FROM receivables WHERE clinic_id = $1`
	args := []any{clinicID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, status.String())
	}
	query += ` ORDER BY due_date, created_at`

	rows, err := repo.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	return collectReceivables(rows)
}

func (repo *ReceivableRepository) ListByIDs(ctx context.Context, clinicID uuid.UUID, ids []uuid.UUID) ([]model.Receivable, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT `+receivableColumns+` FROM receivables WHERE clinic_id = $1 AND id = ANY($2)`,
		clinicID, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list receivables by ids: %w", err)
	}
	defer rows.Close()
	return collectReceivables(rows)
}

func (repo *ReceivableRepository) ListByOrigin(ctx context.Context, clinicID uuid.UUID, originType valueobject.OriginType, originID uuid.UUID) ([]model.Receivable, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT `+receivableColumns+` FROM receivables
		 WHERE clinic_id = $1 AND origin_type = $2 AND origin_id = $3
		 ORDER BY installment_num`,
		clinicID, string(originType), originID,
	)
	if err != nil {
		return nil, fmt.Errorf("list receivables by origin: %w", err)
	}
	defer rows.Close()
	return collectReceivables(rows)
}

func collectReceivables(rows pgx.Rows) ([]model.Receivable, error) {
	var out []model.Receivable
	for rows.Next() {
		r, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SettleWithTransaction applies the settled state and records the cash
// movement atomically. The update only matches rows that are still open
// or overdue.
func (repo *ReceivableRepository) SettleWithTransaction(ctx context.Context, r model.Receivable, cashTx model.FinancialTransaction) error {
	return pgutil.WithTransaction(ctx, repo.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE receivables
			 SET status = $1, paid_amount = $2, paid_at = $3
			 WHERE clinic_id = $4 AND id = $5 AND status IN ('open', 'overdue')`,
			r.Status.String(), r.PaidAmount, r.PaidAt, r.ClinicID, r.ID,
		)
		if err != nil {
			return fmt.Errorf("update receivable: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrConcurrentModification
		}
		return insertTransactionTx(ctx, tx, cashTx)
	})
}

// Renegotiate flips the old rows and inserts the replacement plan in one
// transaction. Every old row must still be open or overdue.
func (repo *ReceivableRepository) Renegotiate(ctx context.Context, clinicID uuid.UUID, oldIDs []uuid.UUID, replacements []model.Receivable) error {
	return pgutil.WithTransaction(ctx, repo.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE receivables SET status = 'renegotiated'
			 WHERE clinic_id = $1 AND id = ANY($2) AND status IN ('open', 'overdue')`,
			clinicID, oldIDs,
		)
		if err != nil {
			return fmt.Errorf("flip receivables: %w", err)
		}
		if tag.RowsAffected() != int64(len(oldIDs)) {
			return model.ErrConcurrentModification
		}
		return insertReceivableBatch(ctx, tx, replacements)
	})
}

func (repo *ReceivableRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM receivables WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete receivable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (repo *ReceivableRepository) MarkOverdue(ctx context.Context, today time.Time) ([]port.OverdueCount, error) {
	rows, err := repo.pool.Query(ctx,
		`UPDATE receivables SET status = 'overdue'
		 WHERE status = 'open' AND due_date < $1
		 RETURNING clinic_id`,
		today,
	)
	if err != nil {
		return nil, fmt.Errorf("mark receivables overdue: %w", err)
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
		out = append(out, port.OverdueCount{ClinicID: clinicID, Receivables: n})
	}
	return out, nil
}
