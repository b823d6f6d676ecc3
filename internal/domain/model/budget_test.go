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

func newTestBudget(t *testing.T, mutate func(*Budget)) Budget {
	t.Helper()
	b, err := NewBudget(
		uuid.New(), nil, nil,
		valueobject.BudgetOrtho, valueobject.OrthoTraditional,
		"Convencional",
		decimal.RequireFromString("180.00"), 24,
		decimal.RequireFromString("4320.00"), decimal.RequireFromString("3900.00"),
		nil, nil, nil, false, false, "", time.Now(),
	)
	require.NoError(t, err)
	if mutate != nil {
		mutate(&b)
	}
	return b
}

func TestNewBudget_Validation(t *testing.T) {
	badDay := 29
	_, err := NewBudget(
		uuid.New(), nil, nil,
		valueobject.BudgetOrtho, valueobject.OrthoTraditional, "",
		decimal.RequireFromString("180.00"), 24,
		decimal.Zero, decimal.Zero,
		nil, nil, &badDay, false, false, "", time.Now(),
	)
	assert.ErrorIs(t, err, ErrInvalidDueDay)
}

func TestBudget_StatusTransitions(t *testing.T) {
	b := newTestBudget(t, nil)

	approved, err := b.WithStatus(valueobject.BudgetApproved)
	require.NoError(t, err)
	assert.Equal(t, valueobject.BudgetApproved, approved.Status)

	_, err = approved.WithStatus(valueobject.BudgetCancelled)
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestBudget_QuoteFixedDay(t *testing.T) {
	day := 10
	b := newTestBudget(t, func(b *Budget) { b.DueDay = &day })
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	schedule, err := b.Quote(start)
	require.NoError(t, err)
	require.Len(t, schedule, 24)
	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), schedule[0].DueDate)
	assert.Equal(t, "180.00", schedule[0].Amount.StringFixed(2))
}

func TestBudget_QuoteAnniversarySplit(t *testing.T) {
	b := newTestBudget(t, func(b *Budget) {
		b.Installments = 3
		b.Total = decimal.RequireFromString("100.00")
	})
	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	schedule, err := b.Quote(start)
	require.NoError(t, err)
	require.Len(t, schedule, 3)
	assert.Equal(t, "33.34", schedule[0].Amount.StringFixed(2))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), schedule[1].DueDate)
}

func TestBudget_QuoteCashHasNoSchedule(t *testing.T) {
	b := newTestBudget(t, func(b *Budget) { b.IsCash = true })

	schedule, err := b.Quote(time.Now())
	require.NoError(t, err)
	assert.Nil(t, schedule)
}

func TestBudget_QuoteSingleInstallment(t *testing.T) {
	b := newTestBudget(t, func(b *Budget) {
		b.Installments = 1
		b.Total = decimal.RequireFromString("500.00")
	})
	start := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)

	schedule, err := b.Quote(start)
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "500.00", schedule[0].Amount.StringFixed(2))
	assert.Equal(t, DateOnly(start), schedule[0].DueDate)
}
