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

// MoveWaitlistEntryUseCase moves a kanban card. The move is guarded on
// the column the mover last saw; the audit-log append and the broker
// publish are best-effort.
type MoveWaitlistEntryUseCase struct {
	waitlistRepo port.WaitlistRepository
	publisher    port.EventPublisher
	logger       *slog.Logger
}

// NewMoveWaitlistEntryUseCase wires dependencies.
func NewMoveWaitlistEntryUseCase(
	waitlistRepo port.WaitlistRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *MoveWaitlistEntryUseCase {
	return &MoveWaitlistEntryUseCase{
		waitlistRepo: waitlistRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute applies the move.
func (uc *MoveWaitlistEntryUseCase) Execute(
	ctx context.Context,
	clinicID, actorID uuid.UUID,
	req dto.MoveWaitlistEntryRequest,
) (dto.WaitlistEntryResponse, error) {
	now := time.Now().UTC()

	entryID, err := parseID(req.EntryID)
	if err != nil {
		return dto.WaitlistEntryResponse{}, err
	}
	from, err := valueobject.NewWaitlistStatus(req.FromStatus)
	if err != nil {
		return dto.WaitlistEntryResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	to, err := valueobject.NewWaitlistStatus(req.ToStatus)
	if err != nil {
		return dto.WaitlistEntryResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	if err := uc.waitlistRepo.Move(ctx, clinicID, entryID, from, to); err != nil {
		return dto.WaitlistEntryResponse{}, fmt.Errorf("move entry: %w", err)
	}

	entry, err := uc.waitlistRepo.GetByID(ctx, clinicID, entryID)
	if err != nil {
		return dto.WaitlistEntryResponse{}, fmt.Errorf("reload entry: %w", err)
	}

	logRow := model.WaitlistEvent{
		ID:              uuid.New(),
		ClinicID:        clinicID,
		WaitlistEntryID: entryID,
		FromStatus:      &from,
		ToStatus:        to,
		ActorUserID:     &actorID,
		Note:            req.Note,
		CreatedAt:       now,
	}
	if err := uc.waitlistRepo.AppendEvent(ctx, logRow); err != nil {
		uc.logger.Warn("waitlist event log append failed", "entry_id", entryID, "error", err)
	}

	ev := event.NewWaitlistEntryMoved(clinicID, entryID, string(from), string(to))
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}

	return dto.WaitlistEntryFromModel(entry), nil
}
