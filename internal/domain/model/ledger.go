package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/domain/valueobject"
)

// Category classifies transactions in the clinic's chart of accounts.
// A category is either an income (IN) or expense (OUT) bucket.
type Category struct {
	ID        uuid.UUID
	ClinicID  uuid.UUID
	Name      string
	Type      valueobject.FinancialType
	CreatedAt time.Time
}

func NewCategory(clinicID uuid.UUID, name string, t valueobject.FinancialType, now time.Time) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrInvalidInput
	}
	return Category{
		ID:        uuid.New(),
		ClinicID:  clinicID,
		Name:      name,
		Type:      t,
		CreatedAt: now,
	}, nil
}

// CostCenter groups spending by unit (a chair, a room, a partner doctor).
type CostCenter struct {
	ID        uuid.UUID
	ClinicID  uuid.UUID
	Name      string
	CreatedAt time.Time
}

func NewCostCenter(clinicID uuid.UUID, name string, now time.Time) (CostCenter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CostCenter{}, ErrInvalidInput
	}
	return CostCenter{
		ID:        uuid.New(),
		ClinicID:  clinicID,
		Name:      name,
		CreatedAt: now,
	}, nil
}
