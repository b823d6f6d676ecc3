package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
	"github.com/dentara/dentara/internal/domain/valueobject"
	"github.com/dentara/dentara/pkg/events"
)

type mockReceivableRepository struct {
	getByIDFunc     func(ctx context.Context, clinicID, id uuid.UUID) (model.Receivable, error)
	listByIDsFunc   func(ctx context.Context, clinicID uuid.UUID, ids []uuid.UUID) ([]model.Receivable, error)
	settleFunc      func(ctx context.Context, r model.Receivable, tx model.FinancialTransaction) error
	renegotiateFunc func(ctx context.Context, clinicID uuid.UUID, oldIDs []uuid.UUID, replacements []model.Receivable) error
	markOverdueFunc func(ctx context.Context, today time.Time) ([]port.OverdueCount, error)

	created      []model.Receivable
	batches      [][]model.Receivable
	settled      []model.Receivable
	settledTxs   []model.FinancialTransaction
	renegotiated [][]uuid.UUID
	replacements [][]model.Receivable
}

func (m *mockReceivableRepository) Create(_ context.Context, r model.Receivable) error {
	m.created = append(m.created, r)
	return nil
}

func (m *mockReceivableRepository) CreateBatch(_ context.Context, batch []model.Receivable) error {
	m.batches = append(m.batches, batch)
	return nil
}

func (m *mockReceivableRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Receivable, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, clinicID, id)
	}
	return model.Receivable{}, model.ErrNotFound
}

func (m *mockReceivableRepository) ListByStatus(_ context.Context, _ uuid.UUID, _ *valueobject.ReceivableStatus) ([]model.Receivable, error) {
	return nil, nil
}

func (m *mockReceivableRepository) ListByIDs(ctx context.Context, clinicID uuid.UUID, ids []uuid.UUID) ([]model.Receivable, error) {
	if m.listByIDsFunc != nil {
		return m.listByIDsFunc(ctx, clinicID, ids)
	}
	return nil, nil
}

func (m *mockReceivableRepository) ListByOrigin(_ context.Context, _ uuid.UUID, _ valueobject.OriginType, _ uuid.UUID) ([]model.Receivable, error) {
	return nil, nil
}

func (m *mockReceivableRepository) SettleWithTransaction(ctx context.Context, r model.Receivable, tx model.FinancialTransaction) error {
	if m.settleFunc != nil {
		return m.settleFunc(ctx, r, tx)
	}
	m.settled = append(m.settled, r)
	m.settledTxs = append(m.settledTxs, tx)
	return nil
}

func (m *mockReceivableRepository) Renegotiate(ctx context.Context, clinicID uuid.UUID, oldIDs []uuid.UUID, replacements []model.Receivable) error {
	if m.renegotiateFunc != nil {
		return m.renegotiateFunc(ctx, clinicID, oldIDs, replacements)
	}
	m.renegotiated = append(m.renegotiated, oldIDs)
	m.replacements = append(m.replacements, replacements)
	return nil
}

func (m *mockReceivableRepository) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func (m *mockReceivableRepository) MarkOverdue(ctx context.Context, today time.Time) ([]port.OverdueCount, error) {
	if m.markOverdueFunc != nil {
		return m.markOverdueFunc(ctx, today)
	}
	return nil, nil
}

type mockPayableRepository struct {
	getByIDFunc     func(ctx context.Context, clinicID, id uuid.UUID) (model.Payable, error)
	markOverdueFunc func(ctx context.Context, today time.Time) ([]port.OverdueCount, error)

	created    []model.Payable
	settled    []model.Payable
	settledTxs []model.FinancialTransaction
}

func (m *mockPayableRepository) Create(_ context.Context, p model.Payable) error {
	m.created = append(m.created, p)
	return nil
}

func (m *mockPayableRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Payable, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, clinicID, id)
	}
	return model.Payable{}, model.ErrNotFound
}

func (m *mockPayableRepository) ListByStatus(_ context.Context, _ uuid.UUID, _ *valueobject.PayableStatus) ([]model.Payable, error) {
	return nil, nil
}

func (m *mockPayableRepository) SettleWithTransaction(_ context.Context, p model.Payable, tx model.FinancialTransaction) error {
	m.settled = append(m.settled, p)
	m.settledTxs = append(m.settledTxs, tx)
	return nil
}

func (m *mockPayableRepository) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func (m *mockPayableRepository) MarkOverdue(ctx context.Context, today time.Time) ([]port.OverdueCount, error) {
	if m.markOverdueFunc != nil {
		return m.markOverdueFunc(ctx, today)
	}
	return nil, nil
}

type mockContractRepository struct {
	getByIDFunc func(ctx context.Context, clinicID, id uuid.UUID) (model.OrthoContract, error)
	cancelFunc  func(ctx context.Context, c model.OrthoContract) (int, error)

	createdContracts []model.OrthoContract
	createdBatches   [][]model.Receivable
}

func (m *mockContractRepository) CreateWithSchedule(_ context.Context, c model.OrthoContract, batch []model.Receivable) error {
	m.createdContracts = append(m.createdContracts, c)
	m.createdBatches = append(m.createdBatches, batch)
	return nil
}

func (m *mockContractRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.OrthoContract, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, clinicID, id)
	}
	return model.OrthoContract{}, model.ErrNotFound
}

func (m *mockContractRepository) List(_ context.Context, _ uuid.UUID) ([]model.OrthoContract, error) {
	return nil, nil
}

func (m *mockContractRepository) Cancel(ctx context.Context, c model.OrthoContract) (int, error) {
	if m.cancelFunc != nil {
		return m.cancelFunc(ctx, c)
	}
	return 0, nil
}

type mockWaitlistRepository struct {
	moveFunc        func(ctx context.Context, clinicID, id uuid.UUID, from, to valueobject.WaitlistStatus) error
	getByIDFunc     func(ctx context.Context, clinicID, id uuid.UUID) (model.WaitlistEntry, error)
	appendEventFunc func(ctx context.Context, ev model.WaitlistEvent) error

	created []model.WaitlistEntry
	events  []model.WaitlistEvent
}

func (m *mockWaitlistRepository) Create(_ context.Context, e model.WaitlistEntry) error {
	m.created = append(m.created, e)
	return nil
}

func (m *mockWaitlistRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.WaitlistEntry, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, clinicID, id)
	}
	return model.WaitlistEntry{}, model.ErrNotFound
}

func (m *mockWaitlistRepository) List(_ context.Context, _ uuid.UUID) ([]model.WaitlistEntry, error) {
	return nil, nil
}

func (m *mockWaitlistRepository) Move(ctx context.Context, clinicID, id uuid.UUID, from, to valueobject.WaitlistStatus) error {
	if m.moveFunc != nil {
		return m.moveFunc(ctx, clinicID, id, from, to)
	}
	return nil
}

func (m *mockWaitlistRepository) AppendEvent(ctx context.Context, ev model.WaitlistEvent) error {
	if m.appendEventFunc != nil {
		return m.appendEventFunc(ctx, ev)
	}
	m.events = append(m.events, ev)
	return nil
}

func (m *mockWaitlistRepository) ListEvents(_ context.Context, _, _ uuid.UUID) ([]model.WaitlistEvent, error) {
	return nil, nil
}

func (m *mockWaitlistRepository) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

type mockEventPublisher struct {
	publishFunc func(ctx context.Context, ev events.DomainEvent) error

	published []events.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, ev events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, ev)
	}
	m.published = append(m.published, ev)
	return nil
}

func (m *mockEventPublisher) Close() error { return nil }

type mockPatientRepository struct {
	searchFunc func(ctx context.Context, clinicID uuid.UUID, query string, limit int) ([]model.Patient, error)

	created []model.Patient
	batches [][]model.Patient
}

func (m *mockPatientRepository) Create(_ context.Context, p model.Patient) error {
	m.created = append(m.created, p)
	return nil
}

func (m *mockPatientRepository) CreateBatch(_ context.Context, batch []model.Patient) error {
	m.batches = append(m.batches, batch)
	return nil
}

func (m *mockPatientRepository) GetByID(_ context.Context, _, _ uuid.UUID) (model.Patient, error) {
	return model.Patient{}, model.ErrNotFound
}

func (m *mockPatientRepository) Update(_ context.Context, _ model.Patient) error { return nil }

func (m *mockPatientRepository) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func (m *mockPatientRepository) Search(ctx context.Context, clinicID uuid.UUID, query string, limit int) ([]model.Patient, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, clinicID, query, limit)
	}
	return nil, nil
}

func (m *mockPatientRepository) NextCode(_ context.Context, _ uuid.UUID) (string, error) {
	return "P00001", nil
}
