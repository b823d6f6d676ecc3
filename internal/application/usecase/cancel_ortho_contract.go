package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/domain/event"
	"github.com/dentara/dentara/internal/domain/port"
)

// CancelOrthoContractUseCase cancels a contract and closes out its
// remaining open receivables.
type CancelOrthoContractUseCase struct {
	contractRepo port.OrthoContractRepository
	publisher    port.EventPublisher
	logger       *slog.Logger
}

// NewCancelOrthoContractUseCase wires dependencies.
func NewCancelOrthoContractUseCase(
	contractRepo port.OrthoContractRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CancelOrthoContractUseCase {
	return &CancelOrthoContractUseCase{
		contractRepo: contractRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute cancels the contract.
func (uc *CancelOrthoContractUseCase) Execute(
	ctx context.Context,
	clinicID, contractID uuid.UUID,
) (dto.OrthoContractResponse, error) {
	contract, err := uc.contractRepo.GetByID(ctx, clinicID, contractID)
	if err != nil {
		return dto.OrthoContractResponse{}, fmt.Errorf("find contract: %w", err)
	}

	cancelled, err := contract.Cancel()
	if err != nil {
		return dto.OrthoContractResponse{}, fmt.Errorf("cancel: %w", err)
	}

	closed, err := uc.contractRepo.Cancel(ctx, cancelled)
	if err != nil {
		return dto.OrthoContractResponse{}, fmt.Errorf("persist cancellation: %w", err)
	}

	ev := event.NewOrthoContractCancelled(clinicID, cancelled.ID, closed)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}

	return dto.OrthoContractFromModel(cancelled), nil
}
