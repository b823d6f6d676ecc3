package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/domain/valueobject"
)

// ErrInvalidPriority is returned when a waitlist priority falls outside
// 0..10.
var ErrInvalidPriority = errors.New("priority must be between 0 and 10")

// WaitlistEntry is one card on the scheduling kanban. Moves between
// columns are guarded on the status the mover last observed.
type WaitlistEntry struct {
	ID                      uuid.UUID
	ClinicID                uuid.UUID
	PatientID               uuid.UUID
	Specialty               string
	PreferredProfessionalID *uuid.UUID
	Priority                int
	Status                  valueobject.WaitlistStatus
	Notes                   string
	CreatedAt               time.Time
}

// WaitlistEvent is the audit trail of a card's moves. Rows are appended
// best-effort; a failed append never undoes the move itself.
type WaitlistEvent struct {
	ID              uuid.UUID
	ClinicID        uuid.UUID
	WaitlistEntryID uuid.UUID
	FromStatus      *valueobject.WaitlistStatus
	ToStatus        valueobject.WaitlistStatus
	ActorUserID     *uuid.UUID
	Note            string
	CreatedAt       time.Time
}

func NewWaitlistEntry(
	clinicID, patientID uuid.UUID,
	specialty string,
	preferredProfessionalID *uuid.UUID,
	priority int,
	notes string,
	now time.Time,
) (WaitlistEntry, error) {
	if priority < 0 || priority > 10 {
		return WaitlistEntry{}, ErrInvalidPriority
	}

	return WaitlistEntry{
		ID:                      uuid.New(),
		ClinicID:                clinicID,
		PatientID:               patientID,
		Specialty:               strings.TrimSpace(specialty),
		PreferredProfessionalID: preferredProfessionalID,
		Priority:                priority,
		Status:                  valueobject.WaitlistNew,
		Notes:                   notes,
		CreatedAt:               now,
	}, nil
}

// Move transitions the card to a new column and returns the event row to
// append. The fromStatus is what the caller observed; the repository's
// conditional update enforces it against the stored row.
func (w WaitlistEntry) Move(
	to valueobject.WaitlistStatus,
	actorUserID *uuid.UUID,
	note string,
	now time.Time,
) (WaitlistEntry, WaitlistEvent) {
	from := w.Status
	next := w
	next.Status = to
	event := WaitlistEvent{
		ID:              uuid.New(),
		ClinicID:        w.ClinicID,
		WaitlistEntryID: w.ID,
		FromStatus:      &from,
		ToStatus:        to,
		ActorUserID:     actorUserID,
		Note:            note,
		CreatedAt:       now,
	}
	return next, event
}
