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

// PayableUseCase covers the payable lifecycle: create, settle, list and
// delete.
type PayableUseCase struct {
	payableRepo port.PayableRepository
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewPayableUseCase wires dependencies.
func NewPayableUseCase(
	payableRepo port.PayableRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *PayableUseCase {
	return &PayableUseCase{
		payableRepo: payableRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Create records a new obligation.
func (uc *PayableUseCase) Create(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.CreatePayableRequest,
) (dto.PayableResponse, error) {
	now := time.Now().UTC()

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return dto.PayableResponse{}, err
	}
	categoryID, err := parseIDPtr(req.CategoryID)
	if err != nil {
		return dto.PayableResponse{}, err
	}
	costCenterID, err := parseIDPtr(req.CostCenterID)
	if err != nil {
		return dto.PayableResponse{}, err
	}

	payable, err := model.NewPayable(
		clinicID, req.Supplier, categoryID, costCenterID,
		req.Amount, dueDate, req.Description, now,
	)
	if err != nil {
		return dto.PayableResponse{}, fmt.Errorf("build payable: %w", err)
	}

	if err := uc.payableRepo.Create(ctx, payable); err != nil {
		return dto.PayableResponse{}, fmt.Errorf("persist payable: %w", err)
	}
	return dto.PayableFromModel(payable), nil
}

// Settle pays the payable in full and records the OUT transaction with a
// rateio entry carrying the payable's category and cost center.
func (uc *PayableUseCase) Settle(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.SettlePayableRequest,
) (dto.PayableResponse, error) {
	now := time.Now().UTC()

	id, err := parseID(req.PayableID)
	if err != nil {
		return dto.PayableResponse{}, err
	}
	method, err := valueobject.NewPaymentMethod(req.PaymentMethod)
	if err != nil {
		return dto.PayableResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	payable, err := uc.payableRepo.GetByID(ctx, clinicID, id)
	if err != nil {
		return dto.PayableResponse{}, fmt.Errorf("find payable: %w", err)
	}

	settled, err := payable.Settle(now)
	if err != nil {
		return dto.PayableResponse{}, fmt.Errorf("settle: %w", err)
	}

	var allocations []model.EntryAllocation
	if payable.CategoryID != nil || payable.CostCenterID != nil {
		allocations = []model.EntryAllocation{{
			CategoryID:   payable.CategoryID,
			CostCenterID: payable.CostCenterID,
			Amount:       payable.Amount,
		}}
	}
	cashTx, err := model.NewTransaction(
		clinicID, valueobject.FinancialOut, nil,
		payable.Amount, now, payable.Description, method,
		valueobject.OriginManual, &payable.ID,
		allocations, now,
	)
	if err != nil {
		return dto.PayableResponse{}, fmt.Errorf("build transaction: %w", err)
	}

	if err := uc.payableRepo.SettleWithTransaction(ctx, settled, cashTx); err != nil {
		return dto.PayableResponse{}, fmt.Errorf("persist settlement: %w", err)
	}

	ev := event.NewPayableSettled(clinicID, settled.ID, settled.Amount)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}
	return dto.PayableFromModel(settled), nil
}

// List returns payables, optionally filtered by status.
func (uc *PayableUseCase) List(
	ctx context.Context,
	clinicID uuid.UUID,
	status string,
) ([]dto.PayableResponse, error) {
	var filter *valueobject.PayableStatus
	if status != "" {
		s, err := valueobject.NewPayableStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
		}
		filter = &s
	}
	items, err := uc.payableRepo.ListByStatus(ctx, clinicID, filter)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	return dto.PayablesFromModel(items), nil
}

// Delete removes a payable.
func (uc *PayableUseCase) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.payableRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete payable: %w", err)
	}
	return nil
}
