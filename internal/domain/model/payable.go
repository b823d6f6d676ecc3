package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/internal/domain/valueobject"
	"github.com/dentara/dentara/pkg/money"
)

// Payable is an obligation of the clinic: rent, lab fees, supplier
// invoices. Unlike receivables a payable settles in full in one step and
// never enters renegotiation. The category and cost center flow into the
// OUT transaction's entry when the payable settles.
type Payable struct {
	ID           uuid.UUID
	ClinicID     uuid.UUID
	Supplier     string
	CategoryID   *uuid.UUID
	CostCenterID *uuid.UUID
	DueDate      time.Time
	Amount       decimal.Decimal
	Status       valueobject.PayableStatus
	PaidAt       *time.Time
	Description  string
	CreatedAt    time.Time
}

func NewPayable(
	clinicID uuid.UUID,
	supplier string,
	categoryID, costCenterID *uuid.UUID,
	amount decimal.Decimal,
	dueDate time.Time,
	description string,
	now time.Time,
) (Payable, error) {
	if !amount.IsPositive() {
		return Payable{}, ErrInvalidAmount
	}

	return Payable{
		ID:           uuid.New(),
		ClinicID:     clinicID,
		Supplier:     strings.TrimSpace(supplier),
		CategoryID:   categoryID,
		CostCenterID: costCenterID,
		DueDate:      DateOnly(dueDate),
		Amount:       money.RoundCents(amount),
		Status:       valueobject.PayableStatusOpen,
		Description:  description,
		CreatedAt:    now,
	}, nil
}

// Settle marks the payable as paid. Already-paid items are rejected so a
// double-submit cannot record the expense twice.
func (p Payable) Settle(now time.Time) (Payable, error) {
	if !p.Status.IsOpen() {
		return p, ErrConcurrentModification
	}
	next := p
	next.Status = valueobject.PayableStatusPaid
	paidAt := now
	next.PaidAt = &paidAt
	return next, nil
}
