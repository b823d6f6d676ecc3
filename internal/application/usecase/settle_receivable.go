package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/domain/event"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

// SettleReceivableUseCase records a payment against a receivable and the
// matching IN transaction in one database transaction.
type SettleReceivableUseCase struct {
	receivableRepo port.ReceivableRepository
	publisher      port.EventPublisher
	logger         *slog.Logger
}

// NewSettleReceivableUseCase wires dependencies.
func NewSettleReceivableUseCase(
	receivableRepo port.ReceivableRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *SettleReceivableUseCase {
	return &SettleReceivableUseCase{
		receivableRepo: receivableRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// Execute settles the receivable. A zero request amount pays the full
// outstanding balance.
func (uc *SettleReceivableUseCase) Execute(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.SettleReceivableRequest,
) (dto.SettleReceivableResponse, error) {
	now := time.Now().UTC()

	id, err := parseID(req.ReceivableID)
	if err != nil {
		return dto.SettleReceivableResponse{}, err
	}
	method, err := valueobject.NewPaymentMethod(req.PaymentMethod)
	if err != nil {
		return dto.SettleReceivableResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	receivable, err := uc.receivableRepo.GetByID(ctx, clinicID, id)
	if err != nil {
		return dto.SettleReceivableResponse{}, fmt.Errorf("find receivable: %w", err)
	}

	paid := req.Amount
	if paid.IsZero() {
		paid = receivable.Outstanding()
	}

	settled, err := receivable.Settle(paid, now)
	if err != nil {
		return dto.SettleReceivableResponse{}, fmt.Errorf("settle: %w", err)
	}

	cashTx, err := model.NewTransaction(
		clinicID, valueobject.FinancialIn, receivable.PatientID,
		paid, now, receivable.Description, method,
		valueobject.OriginInstallment, &receivable.ID,
		nil, now,
	)
	if err != nil {
		return dto.SettleReceivableResponse{}, fmt.Errorf("build transaction: %w", err)
	}

	if err := uc.receivableRepo.SettleWithTransaction(ctx, settled, cashTx); err != nil {
		return dto.SettleReceivableResponse{}, fmt.Errorf("persist settlement: %w", err)
	}

	closed := settled.Status.Equal(valueobject.ReceivableStatusPaid)
	ev := event.NewReceivableSettled(clinicID, settled.ID, paid, settled.Outstanding(), closed)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}

	return dto.SettleReceivableResponse{
		Receivable:  dto.ReceivableFromModel(settled),
		Transaction: dto.TransactionFromModel(cashTx),
	}, nil
}
