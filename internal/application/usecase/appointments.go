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

// AppointmentUseCase covers calendar CRUD within date windows.
type AppointmentUseCase struct {
	appointmentRepo port.AppointmentRepository
}

// NewAppointmentUseCase wires dependencies.
func NewAppointmentUseCase(appointmentRepo port.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{appointmentRepo: appointmentRepo}
}

// Create books a slot.
func (uc *AppointmentUseCase) Create(
	ctx context.Context,
	clinicID, actorID uuid.UUID,
	req dto.CreateAppointmentRequest,
) (dto.AppointmentResponse, error) {
	professionalID, err := parseID(req.ProfessionalID)
	if err != nil {
		return dto.AppointmentResponse{}, err
	}
	patientID, err := parseIDPtr(req.PatientID)
	if err != nil {
		return dto.AppointmentResponse{}, err
	}

	appointment, err := model.NewAppointment(
		clinicID, professionalID, patientID, &actorID,
		req.Title, req.StartAt, req.EndAt, req.Notes, time.Now().UTC(),
	)
	if err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("build appointment: %w", err)
	}

	if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("persist appointment: %w", err)
	}
	return dto.AppointmentFromModel(appointment), nil
}

// Update reschedules and re-statuses a slot.
func (uc *AppointmentUseCase) Update(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.UpdateAppointmentRequest,
) (dto.AppointmentResponse, error) {
	now := time.Now().UTC()

	id, err := parseID(req.AppointmentID)
	if err != nil {
		return dto.AppointmentResponse{}, err
	}
	status, err := valueobject.NewAppointmentStatus(req.Status)
	if err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	appointment, err := uc.appointmentRepo.GetByID(ctx, clinicID, id)
	if err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("find appointment: %w", err)
	}

	updated, err := appointment.Reschedule(req.StartAt, req.EndAt, now)
	if err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("reschedule: %w", err)
	}
	if req.Title != "" {
		updated.Title = req.Title
	}
	updated.Notes = req.Notes
	updated = updated.WithStatus(status, now)

	if err := uc.appointmentRepo.Update(ctx, updated); err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("persist appointment: %w", err)
	}
	return dto.AppointmentFromModel(updated), nil
}

// ListByRange returns slots overlapping the window.
func (uc *AppointmentUseCase) ListByRange(
	ctx context.Context,
	clinicID uuid.UUID,
	from, to time.Time,
) ([]dto.AppointmentResponse, error) {
	items, err := uc.appointmentRepo.ListByRange(ctx, clinicID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return dto.AppointmentsFromModel(items), nil
}

// Delete removes a slot.
func (uc *AppointmentUseCase) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.appointmentRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
