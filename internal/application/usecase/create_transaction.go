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

// CreateTransactionUseCase records a manual cash movement with its rateio
// entries. When the request links a receivable, the receivable settles
// inside the same database transaction.
type CreateTransactionUseCase struct {
	transactionRepo port.TransactionRepository
	receivableRepo  port.ReceivableRepository
	publisher       port.EventPublisher
	logger          *slog.Logger
}

// NewCreateTransactionUseCase wires dependencies.
func NewCreateTransactionUseCase(
	transactionRepo port.TransactionRepository,
	receivableRepo port.ReceivableRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		receivableRepo:  receivableRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

// Execute validates and records the movement.
func (uc *CreateTransactionUseCase) Execute(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.CreateTransactionRequest,
) (dto.TransactionResponse, error) {
	now := time.Now().UTC()

	txType, err := valueobject.NewFinancialType(req.Type)
	if err != nil {
		return dto.TransactionResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	method, err := valueobject.NewPaymentMethod(req.PaymentMethod)
	if err != nil {
		return dto.TransactionResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return dto.TransactionResponse{}, err
	}
	patientID, err := parseIDPtr(req.PatientID)
	if err != nil {
		return dto.TransactionResponse{}, err
	}

	allocations := make([]model.EntryAllocation, 0, len(req.Entries))
	for _, e := range req.Entries {
		categoryID, err := parseIDPtr(e.CategoryID)
		if err != nil {
			return dto.TransactionResponse{}, err
		}
		costCenterID, err := parseIDPtr(e.CostCenterID)
		if err != nil {
			return dto.TransactionResponse{}, err
		}
		allocations = append(allocations, model.EntryAllocation{
			CategoryID:   categoryID,
			CostCenterID: costCenterID,
			Amount:       e.Amount,
		})
	}

	origin := valueobject.OriginManual
	var originID *uuid.UUID
	var linked *model.Receivable
	if req.ReceivableID != nil && *req.ReceivableID != "" {
		id, err := parseID(*req.ReceivableID)
		if err != nil {
			return dto.TransactionResponse{}, err
		}
		r, err := uc.receivableRepo.GetByID(ctx, clinicID, id)
		if err != nil {
			return dto.TransactionResponse{}, fmt.Errorf("find receivable: %w", err)
		}
		linked = &r
		origin = valueobject.OriginInstallment
		originID = &r.ID
	}

	cashTx, err := model.NewTransaction(
		clinicID, txType, patientID, req.Amount, date,
		req.Description, method, origin, originID,
		allocations, now,
	)
	if err != nil {
		return dto.TransactionResponse{}, fmt.Errorf("build transaction: %w", err)
	}

	if linked != nil {
		settled, err := linked.Settle(req.Amount, now)
		if err != nil {
			return dto.TransactionResponse{}, fmt.Errorf("settle linked receivable: %w", err)
		}
		if err := uc.receivableRepo.SettleWithTransaction(ctx, settled, cashTx); err != nil {
			return dto.TransactionResponse{}, fmt.Errorf("persist: %w", err)
		}
	} else if err := uc.transactionRepo.Create(ctx, cashTx); err != nil {
		return dto.TransactionResponse{}, fmt.Errorf("persist: %w", err)
	}

	ev := event.NewTransactionRecorded(clinicID, cashTx.ID, string(cashTx.Type), cashTx.Amount)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}

	return dto.TransactionFromModel(cashTx), nil
}
