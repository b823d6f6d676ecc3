package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
)

// AnamnesisRepository is the pgx implementation of
// port.AnamnesisRepository. One row per patient, upserted in place.
type AnamnesisRepository struct {
	pool *pgxpool.Pool
}

func NewAnamnesisRepository(pool *pgxpool.Pool) *AnamnesisRepository {
	return &AnamnesisRepository{pool: pool}
}

const anamnesisColumns = `
	id, clinic_id, patient_id,
	has_allergy, allergy_details,
	has_heart_disease, heart_details,
	has_diabetes, diabetes_details,
	has_hypertension, hypertension_details,
	has_bleeding_disorder, bleeding_details,
	uses_medication, medication_details,
	is_pregnant, is_smoker, other_conditions,
	has_alert, alert_message,
	updated_by, updated_at, created_at`

func (repo *AnamnesisRepository) Upsert(ctx context.Context, a model.Anamnesis) error {
	_, err := repo.pool.Exec(ctx, `
		INSERT INTO anamneses (`+anamnesisColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (clinic_id, patient_id) DO UPDATE SET
			has_allergy = EXCLUDED.has_allergy,
			allergy_details = EXCLUDED.allergy_details,
			has_heart_disease = EXCLUDED.has_heart_disease,
			heart_details = EXCLUDED.heart_details,
			has_diabetes = EXCLUDED.has_diabetes,
			diabetes_details = EXCLUDED.diabetes_details,
			has_hypertension = EXCLUDED.has_hypertension,
			hypertension_details = EXCLUDED.hypertension_details,
			has_bleeding_disorder = EXCLUDED.has_bleeding_disorder,
			bleeding_details = EXCLUDED.bleeding_details,
			uses_medication = EXCLUDED.uses_medication,
			medication_details = EXCLUDED.medication_details,
			is_pregnant = EXCLUDED.is_pregnant,
			is_smoker = EXCLUDED.is_smoker,
			other_conditions = EXCLUDED.other_conditions,
			has_alert = EXCLUDED.has_alert,
			alert_message = EXCLUDED.alert_message,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`,
		a.ID, a.ClinicID, a.PatientID,
		a.HasAllergy, a.AllergyDetails,
		a.HasHeartDisease, a.HeartDetails,
		a.HasDiabetes, a.DiabetesDetails,
		a.HasHypertension, a.HypertensionDetails,
		a.HasBleedingDisorder, a.BleedingDetails,
		a.UsesMedication, a.MedicationDetails,
		a.IsPregnant, a.IsSmoker, a.OtherConditions,
		a.HasAlert, a.AlertMessage,
		a.UpdatedBy, a.UpdatedAt, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert anamnesis: %w", err)
	}
	return nil
}

func (repo *AnamnesisRepository) GetByPatient(ctx context.Context, clinicID, patientID uuid.UUID) (model.Anamnesis, error) {
	var a model.Anamnesis
	err := repo.pool.QueryRow(ctx,
		`SELECT `+anamnesisColumns+` FROM anamneses WHERE clinic_id = $1 AND patient_id = $2`,
		clinicID, patientID,
	).Scan(
		&a.ID, &a.ClinicID, &a.PatientID,
		&a.HasAllergy, &a.AllergyDetails,
		&a.HasHeartDisease, &a.HeartDetails,
		&a.HasDiabetes, &a.DiabetesDetails,
		&a.HasHypertension, &a.HypertensionDetails,
		&a.HasBleedingDisorder, &a.BleedingDetails,
		&a.UsesMedication, &a.MedicationDetails,
		&a.IsPregnant, &a.IsSmoker, &a.OtherConditions,
		&a.HasAlert, &a.AlertMessage,
		&a.UpdatedBy, &a.UpdatedAt, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Anamnesis{}, model.ErrNotFound
	}
	if err != nil {
		return model.Anamnesis{}, fmt.Errorf("select anamnesis: %w", err)
	}
	return a, nil
}
