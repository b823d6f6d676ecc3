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

// AnamnesisUseCase maintains the one-per-patient health questionnaire.
type AnamnesisUseCase struct {
	anamnesisRepo port.AnamnesisRepository
}

// NewAnamnesisUseCase wires dependencies.
func NewAnamnesisUseCase(anamnesisRepo port.AnamnesisRepository) *AnamnesisUseCase {
	return &AnamnesisUseCase{anamnesisRepo: anamnesisRepo}
}

// Upsert creates or replaces the patient's questionnaire. Detail fields
// of unset condition flags are cleared before persisting.
func (uc *AnamnesisUseCase) Upsert(
	ctx context.Context,
	clinicID, actorID uuid.UUID,
	req dto.UpsertAnamnesisRequest,
) (dto.AnamnesisResponse, error) {
	now := time.Now().UTC()

	patientID, err := parseID(req.PatientID)
	if err != nil {
		return dto.AnamnesisResponse{}, err
	}

	record := model.Anamnesis{
		ID:                  uuid.New(),
		ClinicID:            clinicID,
		PatientID:           patientID,
		HasAllergy:          req.HasAllergy,
		AllergyDetails:      req.AllergyDetails,
		HasHeartDisease:     req.HasHeartDisease,
		HeartDetails:        req.HeartDetails,
		HasDiabetes:         req.HasDiabetes,
		DiabetesDetails:     req.DiabetesDetails,
		HasHypertension:     req.HasHypertension,
		HypertensionDetails: req.HypertensionDetails,
		HasBleedingDisorder: req.HasBleedingDisorder,
		BleedingDetails:     req.BleedingDetails,
		UsesMedication:      req.UsesMedication,
		MedicationDetails:   req.MedicationDetails,
		IsPregnant:          req.IsPregnant,
		IsSmoker:            req.IsSmoker,
		OtherConditions:     req.OtherConditions,
		HasAlert:            req.HasAlert,
		AlertMessage:        req.AlertMessage,
		UpdatedBy:           &actorID,
		UpdatedAt:           now,
		CreatedAt:           now,
	}.Normalize()

	if err := uc.anamnesisRepo.Upsert(ctx, record); err != nil {
		return dto.AnamnesisResponse{}, fmt.Errorf("persist anamnesis: %w", err)
	}
	return dto.AnamnesisFromModel(record), nil
}

// Get loads the questionnaire for one patient.
func (uc *AnamnesisUseCase) Get(
	ctx context.Context,
	clinicID, patientID uuid.UUID,
) (dto.AnamnesisResponse, error) {
	record, err := uc.anamnesisRepo.GetByPatient(ctx, clinicID, patientID)
	if err != nil {
		return dto.AnamnesisResponse{}, fmt.Errorf("find anamnesis: %w", err)
	}
	return dto.AnamnesisFromModel(record), nil
}
