package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
)

// WaitlistUseCase covers kanban card creation and listing. Moves have
// their own use case because of the CAS and audit semantics.
type WaitlistUseCase struct {
	waitlistRepo port.WaitlistRepository
}

// NewWaitlistUseCase wires dependencies.
func NewWaitlistUseCase(waitlistRepo port.WaitlistRepository) *WaitlistUseCase {
	return &WaitlistUseCase{waitlistRepo: waitlistRepo}
}

// Create adds a card in the NEW column.
func (uc *WaitlistUseCase) Create(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.CreateWaitlistEntryRequest,
) (dto.WaitlistEntryResponse, error) {
	patientID, err := parseID(req.PatientID)
	if err != nil {
		return dto.WaitlistEntryResponse{}, err
	}
	preferredID, err := parseIDPtr(req.PreferredProfessionalID)
	if err != nil {
		return dto.WaitlistEntryResponse{}, err
	}

	entry, err := model.NewWaitlistEntry(
		clinicID, patientID, req.Specialty, preferredID,
		req.Priority, req.Notes, time.Now().UTC(),
	)
	if err != nil {
		return dto.WaitlistEntryResponse{}, fmt.Errorf("build entry: %w", err)
	}

	if err := uc.waitlistRepo.Create(ctx, entry); err != nil {
		return dto.WaitlistEntryResponse{}, fmt.Errorf("persist entry: %w", err)
	}
	return dto.WaitlistEntryFromModel(entry), nil
}

// List returns all cards for the board.
func (uc *WaitlistUseCase) List(
	ctx context.Context,
	clinicID uuid.UUID,
) ([]dto.WaitlistEntryResponse, error) {
	items, err := uc.waitlistRepo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	return dto.WaitlistEntriesFromModel(items), nil
}

// History returns the column-move audit trail of one card, oldest first.
func (uc *WaitlistUseCase) History(
	ctx context.Context,
	clinicID, entryID uuid.UUID,
) ([]dto.WaitlistEventResponse, error) {
	events, err := uc.waitlistRepo.ListEvents(ctx, clinicID, entryID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return dto.WaitlistEventsFromModel(events), nil
}

// Delete removes a card.
func (uc *WaitlistUseCase) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.waitlistRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
