package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/internal/domain/valueobject"
	"github.com/dentara/dentara/pkg/money"
)

// Receivable is money owed to the clinic: a manual charge, one installment
// of a plan, or one month of an ortho contract. Status transitions are
// computed here; the repository applies them with a conditional update so a
// concurrent settle/renegotiate loses cleanly instead of double-applying.
type Receivable struct {
	ID                uuid.UUID
	ClinicID          uuid.UUID
	PatientID         *uuid.UUID
	OriginType        valueobject.OriginType
	OriginID          *uuid.UUID
	InstallmentNum    *int
	TotalInstallments *int
	DueDate           time.Time
	Amount            decimal.Decimal
	Status            valueobject.ReceivableStatus
	PaidAmount        decimal.Decimal
	PaidAt            *time.Time
	Description       string
	CreatedAt         time.Time
}

// NewReceivable creates a single open receivable.
func NewReceivable(
	clinicID uuid.UUID,
	patientID *uuid.UUID,
	originType valueobject.OriginType,
	amount decimal.Decimal,
	dueDate time.Time,
	description string,
	now time.Time,
) (Receivable, error) {
	if !amount.IsPositive() {
		return Receivable{}, ErrInvalidAmount
	}

	return Receivable{
		ID:          uuid.New(),
		ClinicID:    clinicID,
		PatientID:   patientID,
		OriginType:  originType,
		DueDate:     DateOnly(dueDate),
		Amount:      money.RoundCents(amount),
		Status:      valueobject.ReceivableStatusOpen,
		PaidAmount:  decimal.Zero,
		Description: description,
		CreatedAt:   now,
	}, nil
}

// ReceivableFromInstallment materializes one generated installment as an
// open receivable owned by clinicID. originID links ortho-contract batches
// back to their contract; nil otherwise.
func ReceivableFromInstallment(
	inst Installment,
	clinicID uuid.UUID,
	patientID *uuid.UUID,
	originType valueobject.OriginType,
	originID *uuid.UUID,
	now time.Time,
) Receivable {
	seq := inst.Sequence
	total := inst.PlanTotal
	return Receivable{
		ID:                uuid.New(),
		ClinicID:          clinicID,
		PatientID:         patientID,
		OriginType:        originType,
		OriginID:          originID,
		InstallmentNum:    &seq,
		TotalInstallments: &total,
		DueDate:           inst.DueDate,
		Amount:            inst.Amount,
		Status:            valueobject.ReceivableStatusOpen,
		PaidAmount:        decimal.Zero,
		Description:       inst.Description,
		CreatedAt:         now,
	}
}

// Outstanding returns the unpaid remainder of this installment.
func (r Receivable) Outstanding() decimal.Decimal {
	return r.Amount.Sub(r.PaidAmount)
}

// Settle records a payment against the receivable. The paid amount
// accumulates; once it covers the face amount the status becomes paid
// (terminal), otherwise the receivable stays open with the new balance.
func (r Receivable) Settle(paid decimal.Decimal, now time.Time) (Receivable, error) {
	if !paid.IsPositive() {
		return r, ErrInvalidAmount
	}
	if !r.Status.IsOpen() {
		return r, ErrConcurrentModification
	}

	next := r
	next.PaidAmount = r.PaidAmount.Add(money.RoundCents(paid))
	if next.PaidAmount.GreaterThanOrEqual(next.Amount) {
		next.Status = valueobject.ReceivableStatusPaid
		paidAt := now
		next.PaidAt = &paidAt
	}
	return next, nil
}

// MarkRenegotiated transitions an open receivable into the terminal
// renegotiated state. Settled or already-renegotiated items are rejected.
func (r Receivable) MarkRenegotiated() (Receivable, error) {
	if !r.Status.IsOpen() {
		return r, ErrConcurrentModification
	}
	next := r
	next.Status = valueobject.ReceivableStatusRenegotiated
	return next, nil
}

// OutstandingBalance sums the unpaid remainder of the genuinely open
// receivables in the given set. Paid and renegotiated items contribute
// nothing.
func OutstandingBalance(items []Receivable) decimal.Decimal {
	balance := decimal.Zero
	for _, r := range items {
		if r.Status.IsOpen() {
			balance = balance.Add(r.Outstanding())
		}
	}
	return balance
}
