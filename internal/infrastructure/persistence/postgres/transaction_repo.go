package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
	"github.com/dentara/dentara/internal/domain/valueobject"
	pgutil "github.com/dentara/dentara/pkg/postgres"
)

// TransactionRepository is the pgx implementation of
// port.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// insertTransactionTx writes a transaction and its entries inside an
// already-open database transaction. Shared with the receivable and
// payable repositories so settlements stay atomic.
func insertTransactionTx(ctx context.Context, tx pgx.Tx, m model.FinancialTransaction) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO financial_transactions (
			id, clinic_id, type, patient_id, amount, transaction_date,
			description, payment_method, origin_type, origin_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.ClinicID, string(m.Type), m.PatientID, m.Amount, m.Date,
		m.Description, string(m.PaymentMethod), string(m.OriginType), m.OriginID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	b := &pgx.Batch{}
	for _, e := range m.Entries {
		b.Queue(
			`INSERT INTO financial_entries (id, transaction_id, category_id, cost_center_id, amount)
			 VALUES ($1, $2, $3, $4, $5)`,
			e.ID, e.TransactionID, e.CategoryID, e.CostCenterID, e.Amount,
		)
	}
	results := tx.SendBatch(ctx, b)
	defer results.Close()
	for range m.Entries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}
	return nil
}

func (repo *TransactionRepository) Create(ctx context.Context, m model.FinancialTransaction) error {
	return pgutil.WithTransaction(ctx, repo.pool, func(tx pgx.Tx) error {
		return insertTransactionTx(ctx, tx, m)
	})
}

func (repo *TransactionRepository) ListByDateRange(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]model.FinancialTransaction, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT id, clinic_id, type, patient_id, amount, transaction_date,
		        description, payment_method, origin_type, origin_id, created_at
		 FROM financial_transactions
		 WHERE clinic_id = $1 AND transaction_date BETWEEN $2 AND $3
		 ORDER BY transaction_date DESC, created_at DESC`,
		clinicID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []model.FinancialTransaction
	for rows.Next() {
		var (
			m      model.FinancialTransaction
			txType string
			method string
			origin string
		)
		if err := rows.Scan(
			&m.ID, &m.ClinicID, &txType, &m.PatientID, &m.Amount, &m.Date,
			&m.Description, &method, &origin, &m.OriginID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		m.Type = valueobject.FinancialType(txType)
		m.PaymentMethod = valueobject.PaymentMethod(method)
		m.OriginType = valueobject.OriginType(origin)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := repo.attachEntries(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (repo *TransactionRepository) attachEntries(ctx context.Context, txs []model.FinancialTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(txs))
	index := make(map[uuid.UUID]int, len(txs))
	for i, m := range txs {
		ids[i] = m.ID
		index[m.ID] = i
	}

	rows, err := repo.pool.Query(ctx,
		`SELECT id, transaction_id, category_id, cost_center_id, amount
		 FROM financial_entries WHERE transaction_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e model.FinancialEntry
		if err := rows.Scan(&e.ID, &e.TransactionID, &e.CategoryID, &e.CostCenterID, &e.Amount); err != nil {
			return fmt.Errorf("scan entry: %w", err)
		}
		if i, ok := index[e.TransactionID]; ok {
			txs[i].Entries = append(txs[i].Entries, e)
		}
	}
	return rows.Err()
}

func (repo *TransactionRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	// Entries cascade via the schema's foreign key.
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM financial_transactions WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (repo *TransactionRepository) Summary(ctx context.Context, clinicID uuid.UUID, from, to time.Time) (port.FinancialSummary, error) {
	summary := port.FinancialSummary{
		TotalIn:         decimal.Zero,
		TotalOut:        decimal.Zero,
		OpenReceivables: decimal.Zero,
		OpenPayables:    decimal.Zero,
	}

	err := repo.pool.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'IN'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'OUT'), 0)
		 FROM financial_transactions
		 WHERE clinic_id = $1 AND transaction_date BETWEEN $2 AND $3`,
		clinicID, from, to,
	).Scan(&summary.TotalIn, &summary.TotalOut)
	if err != nil {
		return port.FinancialSummary{}, fmt.Errorf("sum transactions: %w", err)
	}

	err = repo.pool.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount - paid_amount) FILTER (WHERE status IN ('open', 'overdue')), 0),
			COUNT(*) FILTER (WHERE status = 'overdue')
		 FROM receivables WHERE clinic_id = $1`,
		clinicID,
	).Scan(&summary.OpenReceivables, &summary.OverdueCount)
	if err != nil {
		return port.FinancialSummary{}, fmt.Errorf("sum receivables: %w", err)
	}

	err = repo.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount) FILTER (WHERE status IN ('open', 'overdue')), 0)
		 FROM payables WHERE clinic_id = $1`,
		clinicID,
	).Scan(&summary.OpenPayables)
	if err != nil {
		return port.FinancialSummary{}, fmt.Errorf("sum payables: %w", err)
	}
	return summary, nil
}
