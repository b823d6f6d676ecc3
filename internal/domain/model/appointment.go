package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/domain/valueobject"
)

// ErrInvalidTimeRange is returned when an appointment does not end after
// it starts.
var ErrInvalidTimeRange = errors.New("appointment must end after it starts")

// Appointment is a calendar slot for one professional, optionally tied to
// a patient.
type Appointment struct {
	ID             uuid.UUID
	ClinicID       uuid.UUID
	PatientID      *uuid.UUID
	ProfessionalID uuid.UUID
	Title          string
	StartAt        time.Time
	EndAt          time.Time
	Status         valueobject.AppointmentStatus
	Notes          string
	CreatedBy      *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewAppointment(
	clinicID, professionalID uuid.UUID,
	patientID, createdBy *uuid.UUID,
	title string,
	startAt, endAt time.Time,
	notes string,
	now time.Time,
) (Appointment, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Appointment{}, ErrInvalidInput
	}
	if !endAt.After(startAt) {
		return Appointment{}, ErrInvalidTimeRange
	}

	return Appointment{
		ID:             uuid.New(),
		ClinicID:       clinicID,
		PatientID:      patientID,
		ProfessionalID: professionalID,
		Title:          title,
		StartAt:        startAt,
		EndAt:          endAt,
		Status:         valueobject.AppointmentScheduled,
		Notes:          notes,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Reschedule moves the slot, keeping the end-after-start invariant.
func (a Appointment) Reschedule(startAt, endAt, now time.Time) (Appointment, error) {
	if !endAt.After(startAt) {
		return a, ErrInvalidTimeRange
	}
	next := a
	next.StartAt = startAt
	next.EndAt = endAt
	next.UpdatedAt = now
	return next, nil
}

// WithStatus returns a copy in the given status.
func (a Appointment) WithStatus(s valueobject.AppointmentStatus, now time.Time) Appointment {
	next := a
	next.Status = s
	next.UpdatedAt = now
	return next
}
