package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/internal/domain/valueobject"
	"github.com/dentara/dentara/pkg/money"
)

const (
	// OrthoMaxMonths caps contract duration at ten years.
	OrthoMaxMonths = 120

	defaultOrthoMonths = 24
	defaultOrthoDueDay = 10
)

// OrthoContract is a fixed-monthly orthodontic treatment agreement. Its
// receivable batch is generated once at creation and lives as ordinary
// receivables with origin ortho_contract.
type OrthoContract struct {
	ID             uuid.UUID
	ClinicID       uuid.UUID
	PatientID      uuid.UUID
	ProfessionalID *uuid.UUID
	BudgetID       *uuid.UUID
	StartDate      time.Time
	MonthlyAmount  decimal.Decimal
	TotalMonths    int
	DueDay         int
	Status         valueobject.OrthoContractStatus
	Notes          string
	CreatedAt      time.Time
}

// NewOrthoContract validates and builds a contract. Zero totalMonths and
// dueDay take the clinic defaults (24 months, day 10).
func NewOrthoContract(
	clinicID, patientID uuid.UUID,
	professionalID, budgetID *uuid.UUID,
	monthlyAmount decimal.Decimal,
	totalMonths, dueDay int,
	startDate time.Time,
	notes string,
	now time.Time,
) (OrthoContract, error) {
	if totalMonths == 0 {
		totalMonths = defaultOrthoMonths
	}
	if dueDay == 0 {
		dueDay = defaultOrthoDueDay
	}
	if !monthlyAmount.IsPositive() {
		return OrthoContract{}, ErrInvalidAmount
	}
	if totalMonths < 1 || totalMonths > OrthoMaxMonths {
		return OrthoContract{}, ErrInvalidCount
	}
	if dueDay < 1 || dueDay > 28 {
		return OrthoContract{}, ErrInvalidDueDay
	}

	return OrthoContract{
		ID:             uuid.New(),
		ClinicID:       clinicID,
		PatientID:      patientID,
		ProfessionalID: professionalID,
		BudgetID:       budgetID,
		StartDate:      DateOnly(startDate),
		MonthlyAmount:  money.RoundCents(monthlyAmount),
		TotalMonths:    totalMonths,
		DueDay:         dueDay,
		Status:         valueobject.OrthoContractStatusActive,
		Notes:          notes,
		CreatedAt:      now,
	}, nil
}

// TotalValue is the contract's full price, monthly amount times duration.
func (c OrthoContract) TotalValue() decimal.Decimal {
	return c.MonthlyAmount.Mul(decimal.NewFromInt(int64(c.TotalMonths)))
}

// Schedule renders the contract's fixed-day installment plan.
func (c OrthoContract) Schedule() ([]Installment, error) {
	return GenerateOrthoSchedule(c.MonthlyAmount, c.TotalMonths, c.DueDay, c.StartDate)
}

// Cancel transitions an active contract to cancelled. Completed or
// already-cancelled contracts are rejected.
func (c OrthoContract) Cancel() (OrthoContract, error) {
	if !c.Status.Equal(valueobject.OrthoContractStatusActive) {
		return c, ErrConcurrentModification
	}
	next := c
	next.Status = valueobject.OrthoContractStatusCancelled
	return next, nil
}
