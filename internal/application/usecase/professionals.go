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

// ProfessionalUseCase covers clinician CRUD.
type ProfessionalUseCase struct {
	professionalRepo port.ProfessionalRepository
}

// NewProfessionalUseCase wires dependencies.
func NewProfessionalUseCase(professionalRepo port.ProfessionalRepository) *ProfessionalUseCase {
	return &ProfessionalUseCase{professionalRepo: professionalRepo}
}

// Create registers a clinician, active by default.
func (uc *ProfessionalUseCase) Create(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.CreateProfessionalRequest,
) (dto.ProfessionalResponse, error) {
	professional, err := model.NewProfessional(clinicID, req.Name, req.Specialty, time.Now().UTC())
	if err != nil {
		return dto.ProfessionalResponse{}, fmt.Errorf("build professional: %w", err)
	}
	if err := uc.professionalRepo.Create(ctx, professional); err != nil {
		return dto.ProfessionalResponse{}, fmt.Errorf("persist professional: %w", err)
	}
	return dto.ProfessionalFromModel(professional), nil
}

// Update edits name, specialty and the active flag.
func (uc *ProfessionalUseCase) Update(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.UpdateProfessionalRequest,
) (dto.ProfessionalResponse, error) {
	id, err := parseID(req.ProfessionalID)
	if err != nil {
		return dto.ProfessionalResponse{}, err
	}

	professional, err := uc.professionalRepo.GetByID(ctx, clinicID, id)
	if err != nil {
		return dto.ProfessionalResponse{}, fmt.Errorf("find professional: %w", err)
	}

	updated, err := model.NewProfessional(clinicID, req.Name, req.Specialty, professional.CreatedAt)
	if err != nil {
		return dto.ProfessionalResponse{}, fmt.Errorf("build professional: %w", err)
	}
	updated.ID = professional.ID
	updated.Active = req.Active

	if err := uc.professionalRepo.Update(ctx, updated); err != nil {
		return dto.ProfessionalResponse{}, fmt.Errorf("persist professional: %w", err)
	}
	return dto.ProfessionalFromModel(updated), nil
}

// List returns clinicians, optionally only active ones.
func (uc *ProfessionalUseCase) List(
	ctx context.Context,
	clinicID uuid.UUID,
	activeOnly bool,
) ([]dto.ProfessionalResponse, error) {
	items, err := uc.professionalRepo.List(ctx, clinicID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return dto.ProfessionalsFromModel(items), nil
}

// Delete removes a clinician.
func (uc *ProfessionalUseCase) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.professionalRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete professional: %w", err)
	}
	return nil
}
