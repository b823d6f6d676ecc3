package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/internal/domain/valueobject"
	"github.com/dentara/dentara/pkg/money"
)

// FinancialEntry allocates a slice of a transaction to a category and,
// optionally, a cost center. Entries exist so a single payment can be
// split across the clinic's chart of accounts.
type FinancialEntry struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	CategoryID    *uuid.UUID
	CostCenterID  *uuid.UUID
	Amount        decimal.Decimal
}

// FinancialTransaction is a realized cash movement, IN or OUT. Settling a
// receivable or payable records one; manual movements are recorded
// directly.
type FinancialTransaction struct {
	ID            uuid.UUID
	ClinicID      uuid.UUID
	Type          valueobject.FinancialType
	PatientID     *uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	PaymentMethod valueobject.PaymentMethod
	OriginType    valueobject.OriginType
	OriginID      *uuid.UUID
	Entries       []FinancialEntry
	CreatedAt     time.Time
}

// EntryAllocation is the caller-supplied split for a transaction.
type EntryAllocation struct {
	CategoryID   *uuid.UUID
	CostCenterID *uuid.UUID
	Amount       decimal.Decimal
}

// NewTransaction builds a transaction with its allocation entries. The
// entry amounts must sum to the transaction amount to the cent; when no
// allocations are given a single unallocated entry carries the full
// amount.
func NewTransaction(
	clinicID uuid.UUID,
	txType valueobject.FinancialType,
	patientID *uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
	method valueobject.PaymentMethod,
	originType valueobject.OriginType,
	originID *uuid.UUID,
	allocations []EntryAllocation,
	now time.Time,
) (FinancialTransaction, error) {
	if !amount.IsPositive() {
		return FinancialTransaction{}, ErrInvalidAmount
	}
	amount = money.RoundCents(amount)

	tx := FinancialTransaction{
		ID:            uuid.New(),
		ClinicID:      clinicID,
		Type:          txType,
		PatientID:     patientID,
		Amount:        amount,
		Date:          DateOnly(date),
		Description:   description,
		PaymentMethod: method,
		OriginType:    originType,
		OriginID:      originID,
		CreatedAt:     now,
	}

	if len(allocations) == 0 {
		tx.Entries = []FinancialEntry{{
			ID:            uuid.New(),
			TransactionID: tx.ID,
			Amount:        amount,
		}}
		return tx, nil
	}

	sum := decimal.Zero
	entries := make([]FinancialEntry, 0, len(allocations))
	for _, a := range allocations {
		if !a.Amount.IsPositive() {
			return FinancialTransaction{}, ErrInvalidAmount
		}
		entry := FinancialEntry{
			ID:            uuid.New(),
			TransactionID: tx.ID,
			CategoryID:    a.CategoryID,
			CostCenterID:  a.CostCenterID,
			Amount:        money.RoundCents(a.Amount),
		}
		sum = sum.Add(entry.Amount)
		entries = append(entries, entry)
	}
	if !money.Equal(sum, amount) {
		return FinancialTransaction{}, ErrEntrySumMismatch
	}
	tx.Entries = entries
	return tx, nil
}
