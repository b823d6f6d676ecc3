package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
	"github.com/dentara/dentara/pkg/events"
)

// OverdueCount reports how many items of one clinic flipped to overdue.
type OverdueCount struct {
	ClinicID    uuid.UUID
	Receivables int
	Payables    int
}

// FinancialSummary aggregates a clinic's movements within a date range.
type FinancialSummary struct {
	TotalIn         decimal.Decimal
	TotalOut        decimal.Decimal
	OpenReceivables decimal.Decimal
	OpenPayables    decimal.Decimal
	OverdueCount    int
}

// ReceivableRepository persists receivables. Status-changing methods use
// conditional updates: zero affected rows surfaces as
// model.ErrConcurrentModification. Composite methods run in one database
// transaction.
type ReceivableRepository interface {
	Create(ctx context.Context, r model.Receivable) error
	CreateBatch(ctx context.Context, batch []model.Receivable) error
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Receivable, error)
	ListByStatus(ctx context.Context, clinicID uuid.UUID, status *valueobject.ReceivableStatus) ([]model.Receivable, error)
	ListByIDs(ctx context.Context, clinicID uuid.UUID, ids []uuid.UUID) ([]model.Receivable, error)
	ListByOrigin(ctx context.Context, clinicID uuid.UUID, originType valueobject.OriginType, originID uuid.UUID) ([]model.Receivable, error)
	// SettleWithTransaction applies the settled receivable and records the
	// IN transaction atomically.
	SettleWithTransaction(ctx context.Context, r model.Receivable, tx model.FinancialTransaction) error
	// Renegotiate flips the old receivables to renegotiated and inserts the
	// replacement plan atomically. oldIDs must all still be open or overdue.
	Renegotiate(ctx context.Context, clinicID uuid.UUID, oldIDs []uuid.UUID, replacements []model.Receivable) error
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
	// MarkOverdue flips open receivables due strictly before today, across
	// all clinics, and reports per-clinic counts.
	MarkOverdue(ctx context.Context, today time.Time) ([]OverdueCount, error)
}

// PayableRepository persists clinic obligations.
type PayableRepository interface {
	Create(ctx context.Context, p model.Payable) error
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Payable, error)
	ListByStatus(ctx context.Context, clinicID uuid.UUID, status *valueobject.PayableStatus) ([]model.Payable, error)
	// SettleWithTransaction applies the paid payable and records the OUT
	// transaction atomically.
	SettleWithTransaction(ctx context.Context, p model.Payable, tx model.FinancialTransaction) error
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
	MarkOverdue(ctx context.Context, today time.Time) ([]OverdueCount, error)
}

// TransactionRepository persists the cash ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx model.FinancialTransaction) error
	ListByDateRange(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]model.FinancialTransaction, error)
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
	Summary(ctx context.Context, clinicID uuid.UUID, from, to time.Time) (FinancialSummary, error)
}

// OrthoContractRepository persists contracts together with their
// receivable batches.
type OrthoContractRepository interface {
	// CreateWithSchedule inserts the contract and its receivable batch in
	// one transaction.
	CreateWithSchedule(ctx context.Context, c model.OrthoContract, batch []model.Receivable) error
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.OrthoContract, error)
	List(ctx context.Context, clinicID uuid.UUID) ([]model.OrthoContract, error)
	// Cancel applies the cancelled contract and flips its open receivables
	// to renegotiated in one transaction, returning how many flipped.
	Cancel(ctx context.Context, c model.OrthoContract) (int, error)
}

// PatientRepository persists patient master records.
type PatientRepository interface {
	Create(ctx context.Context, p model.Patient) error
	CreateBatch(ctx context.Context, batch []model.Patient) error
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Patient, error)
	Update(ctx context.Context, p model.Patient) error
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
	// Search matches name, phone, email or CPF against a sanitized query;
	// empty query lists all.
	Search(ctx context.Context, clinicID uuid.UUID, query string, limit int) ([]model.Patient, error)
	// NextCode allocates the next per-clinic patient code.
	NextCode(ctx context.Context, clinicID uuid.UUID) (string, error)
}

// AnamnesisRepository persists one questionnaire per patient.
type AnamnesisRepository interface {
	Upsert(ctx context.Context, a model.Anamnesis) error
	GetByPatient(ctx context.Context, clinicID, patientID uuid.UUID) (model.Anamnesis, error)
}

// ProfessionalRepository persists clinicians.
type ProfessionalRepository interface {
	Create(ctx context.Context, p model.Professional) error
	Update(ctx context.Context, p model.Professional) error
	List(ctx context.Context, clinicID uuid.UUID, activeOnly bool) ([]model.Professional, error)
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Professional, error)
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
}

// AppointmentRepository persists calendar slots.
type AppointmentRepository interface {
	Create(ctx context.Context, a model.Appointment) error
	Update(ctx context.Context, a model.Appointment) error
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Appointment, error)
	ListByRange(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]model.Appointment, error)
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
}

// WaitlistRepository persists kanban cards and their event log.
type WaitlistRepository interface {
	Create(ctx context.Context, e model.WaitlistEntry) error
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.WaitlistEntry, error)
	List(ctx context.Context, clinicID uuid.UUID) ([]model.WaitlistEntry, error)
	// Move is a conditional update guarded on the observed from-status.
	Move(ctx context.Context, clinicID, id uuid.UUID, from, to valueobject.WaitlistStatus) error
	// AppendEvent records a move in the audit log. Callers treat failures
	// as non-fatal.
	AppendEvent(ctx context.Context, ev model.WaitlistEvent) error
	ListEvents(ctx context.Context, clinicID, entryID uuid.UUID) ([]model.WaitlistEvent, error)
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
}

// BudgetRepository persists treatment proposals.
type BudgetRepository interface {
	Create(ctx context.Context, b model.Budget) error
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Budget, error)
	List(ctx context.Context, clinicID uuid.UUID) ([]model.Budget, error)
	// UpdateStatus is a conditional update guarded on status = pending.
	UpdateStatus(ctx context.Context, clinicID, id uuid.UUID, to valueobject.BudgetStatus) error
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
}

// CategoryRepository persists the chart of accounts.
type CategoryRepository interface {
	Create(ctx context.Context, c model.Category) error
	List(ctx context.Context, clinicID uuid.UUID) ([]model.Category, error)
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
}

// CostCenterRepository persists cost centers.
type CostCenterRepository interface {
	Create(ctx context.Context, c model.CostCenter) error
	List(ctx context.Context, clinicID uuid.UUID) ([]model.CostCenter, error)
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
}

// EventPublisher pushes domain events to the message broker. Publishing
// is best-effort; callers log failures and never roll back.
type EventPublisher interface {
	Publish(ctx context.Context, ev events.DomainEvent) error
	Close() error
}
