package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient is the clinic's master record for a person under treatment.
// Code is a per-clinic human-readable identifier assigned at creation.
type Patient struct {
	ID                 uuid.UUID
	ClinicID           uuid.UUID
	Code               string
	Name               string
	Phone              string
	Email              string
	CPF                string
	BirthDate          *time.Time
	Address            string
	ClinicalLeadID     *uuid.UUID
	OrthodonticsLeadID *uuid.UUID
	CreatedAt          time.Time
}

func NewPatient(
	clinicID uuid.UUID,
	code, name, phone, email, cpf, address string,
	birthDate *time.Time,
	now time.Time,
) (Patient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Patient{}, ErrInvalidInput
	}

	var bd *time.Time
	if birthDate != nil {
		d := DateOnly(*birthDate)
		bd = &d
	}

	return Patient{
		ID:        uuid.New(),
		ClinicID:  clinicID,
		Code:      code,
		Name:      name,
		Phone:     SanitizePhone(phone),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CPF:       SanitizeCPF(cpf),
		BirthDate: bd,
		Address:   strings.TrimSpace(address),
		CreatedAt: now,
	}, nil
}

// SanitizePhone strips everything but digits and a leading plus sign.
func SanitizePhone(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeCPF keeps digits only. Format validation is left to the caller;
// imported sheets carry CPFs in mixed formats.
func SanitizeCPF(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
