package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

// FinancialQueryUseCase serves the read side of the financial module:
// listings, contract schedules and the dashboard summary.
type FinancialQueryUseCase struct {
	receivableRepo  port.ReceivableRepository
	transactionRepo port.TransactionRepository
	contractRepo    port.OrthoContractRepository
}

// NewFinancialQueryUseCase wires dependencies.
func NewFinancialQueryUseCase(
	receivableRepo port.ReceivableRepository,
	transactionRepo port.TransactionRepository,
	contractRepo port.OrthoContractRepository,
) *FinancialQueryUseCase {
	return &FinancialQueryUseCase{
		receivableRepo:  receivableRepo,
		transactionRepo: transactionRepo,
		contractRepo:    contractRepo,
	}
}

// ListReceivables returns receivables, optionally filtered by status.
func (uc *FinancialQueryUseCase) ListReceivables(
	ctx context.Context,
	clinicID uuid.UUID,
	status string,
) ([]dto.ReceivableResponse, error) {
	var filter *valueobject.ReceivableStatus
	if status != "" {
		s, err := valueobject.NewReceivableStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
		}
		filter = &s
	}
	items, err := uc.receivableRepo.ListByStatus(ctx, clinicID, filter)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	return dto.ReceivablesFromModel(items), nil
}

// ListTransactions returns cash movements within a date range.
func (uc *FinancialQueryUseCase) ListTransactions(
	ctx context.Context,
	clinicID uuid.UUID,
	from, to time.Time,
) ([]dto.TransactionResponse, error) {
	items, err := uc.transactionRepo.ListByDateRange(ctx, clinicID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return dto.TransactionsFromModel(items), nil
}

// ListContracts returns the clinic's ortho contracts.
func (uc *FinancialQueryUseCase) ListContracts(
	ctx context.Context,
	clinicID uuid.UUID,
) ([]dto.OrthoContractResponse, error) {
	items, err := uc.contractRepo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return dto.OrthoContractsFromModel(items), nil
}

// ContractReceivables returns the receivable batch of one contract.
func (uc *FinancialQueryUseCase) ContractReceivables(
	ctx context.Context,
	clinicID, contractID uuid.UUID,
) ([]dto.ReceivableResponse, error) {
	if _, err := uc.contractRepo.GetByID(ctx, clinicID, contractID); err != nil {
		return nil, fmt.Errorf("find contract: %w", err)
	}
	items, err := uc.receivableRepo.ListByOrigin(ctx, clinicID, valueobject.OriginOrthoContract, contractID)
	if err != nil {
		return nil, fmt.Errorf("list contract receivables: %w", err)
	}
	return dto.ReceivablesFromModel(items), nil
}

// Summary aggregates the clinic's movements within a date range.
func (uc *FinancialQueryUseCase) Summary(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.SummaryRequest,
) (dto.SummaryResponse, error) {
	from, err := parseDate(req.From)
	if err != nil {
		return dto.SummaryResponse{}, err
	}
	to, err := parseDate(req.To)
	if err != nil {
		return dto.SummaryResponse{}, err
	}

	summary, err := uc.transactionRepo.Summary(ctx, clinicID, from, to)
	if err != nil {
		return dto.SummaryResponse{}, fmt.Errorf("summary: %w", err)
	}
	return dto.SummaryResponse{
		TotalIn:         summary.TotalIn,
		TotalOut:        summary.TotalOut,
		Net:             summary.TotalIn.Sub(summary.TotalOut),
		OpenReceivables: summary.OpenReceivables,
		OpenPayables:    summary.OpenPayables,
		OverdueCount:    summary.OverdueCount,
	}, nil
}

// DeleteReceivable removes a receivable.
func (uc *FinancialQueryUseCase) DeleteReceivable(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.receivableRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete receivable: %w", err)
	}
	return nil
}

// DeleteTransaction removes a cash movement and its entries.
func (uc *FinancialQueryUseCase) DeleteTransaction(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.transactionRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
