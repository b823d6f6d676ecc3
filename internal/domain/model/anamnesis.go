package model

import (
	"time"

	"github.com/google/uuid"
)

// Anamnesis is the patient's health questionnaire, one record per patient
// with upsert semantics. Detail fields only carry text while their
// condition flag is set.
type Anamnesis struct {
	ID                  uuid.UUID
	ClinicID            uuid.UUID
	PatientID           uuid.UUID
	HasAllergy          bool
	AllergyDetails      string
	HasHeartDisease     bool
	HeartDetails        string
	HasDiabetes         bool
	DiabetesDetails     string
	HasHypertension     bool
	HypertensionDetails string
	HasBleedingDisorder bool
	BleedingDetails     string
	UsesMedication      bool
	MedicationDetails   string
	IsPregnant          bool
	IsSmoker            bool
	OtherConditions     string
	HasAlert            bool
	AlertMessage        string
	UpdatedBy           *uuid.UUID
	UpdatedAt           time.Time
	CreatedAt           time.Time
}

// Normalize clears detail text for conditions whose flag is off, so a
// toggled-off condition never leaks stale details, and drops the alert
// message when the alert flag is off.
func (a Anamnesis) Normalize() Anamnesis {
	n := a
	if !n.HasAllergy {
		n.AllergyDetails = ""
	}
	if !n.HasHeartDisease {
		n.HeartDetails = ""
	}
	if !n.HasDiabetes {
		n.DiabetesDetails = ""
	}
	if !n.HasHypertension {
		n.HypertensionDetails = ""
	}
	if !n.HasBleedingDisorder {
		n.BleedingDetails = ""
	}
	if !n.UsesMedication {
		n.MedicationDetails = ""
	}
	if !n.HasAlert {
		n.AlertMessage = ""
	}
	return n
}
