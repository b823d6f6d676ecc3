package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/internal/domain/valueobject"
)

func TestNewTransaction_DefaultsSingleEntry(t *testing.T) {
	tx, err := NewTransaction(
		uuid.New(), valueobject.FinancialIn, nil,
		decimal.RequireFromString("250.00"),
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		"Consulta avulsa",
		valueobject.PaymentPix,
		valueobject.OriginManual, nil,
		nil,
		time.Now(),
	)
	require.NoError(t, err)

	require.Len(t, tx.Entries, 1)
	assert.True(t, tx.Entries[0].Amount.Equal(tx.Amount))
	assert.Nil(t, tx.Entries[0].CategoryID)
	assert.Equal(t, tx.ID, tx.Entries[0].TransactionID)
}

func TestNewTransaction_EntriesMustSumExactly(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()

	allocations := []EntryAllocation{
		{CategoryID: &catA, Amount: decimal.RequireFromString("60.00")},
		{CategoryID: &catB, Amount: decimal.RequireFromString("40.00")},
	}
	tx, err := NewTransaction(
		uuid.New(), valueobject.FinancialOut, nil,
		decimal.RequireFromString("100.00"),
		time.Now(), "Material", valueobject.PaymentCash,
		valueobject.OriginManual, nil,
		allocations, time.Now(),
	)
	require.NoError(t, err)
	require.Len(t, tx.Entries, 2)

	// One cent off must be rejected.
	allocations[1].Amount = decimal.RequireFromString("39.99")
	_, err = NewTransaction(
		uuid.New(), valueobject.FinancialOut, nil,
		decimal.RequireFromString("100.00"),
		time.Now(), "Material", valueobject.PaymentCash,
		valueobject.OriginManual, nil,
		allocations, time.Now(),
	)
	assert.ErrorIs(t, err, ErrEntrySumMismatch)
}

func TestNewTransaction_RejectsInvalidAmounts(t *testing.T) {
	_, err := NewTransaction(
		uuid.New(), valueobject.FinancialIn, nil,
		decimal.Zero, time.Now(), "", valueobject.PaymentCash,
		valueobject.OriginManual, nil, nil, time.Now(),
	)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	cat := uuid.New()
	_, err = NewTransaction(
		uuid.New(), valueobject.FinancialIn, nil,
		decimal.RequireFromString("10.00"), time.Now(), "", valueobject.PaymentCash,
		valueobject.OriginManual, nil,
		[]EntryAllocation{{CategoryID: &cat, Amount: decimal.Zero}},
		time.Now(),
	)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
