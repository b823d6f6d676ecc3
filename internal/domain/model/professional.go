package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Professional is a clinician or assistant the clinic schedules work for.
// Inactive professionals stay on record but are excluded from pickers.
type Professional struct {
	ID        uuid.UUID
	ClinicID  uuid.UUID
	Name      string
	Specialty string
	Active    bool
	CreatedAt time.Time
}

func NewProfessional(clinicID uuid.UUID, name, specialty string, now time.Time) (Professional, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Professional{}, ErrInvalidInput
	}
	return Professional{
		ID:        uuid.New(),
		ClinicID:  clinicID,
		Name:      name,
		Specialty: strings.TrimSpace(specialty),
		Active:    true,
		CreatedAt: now,
	}, nil
}
