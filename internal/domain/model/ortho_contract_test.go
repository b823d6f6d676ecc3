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

func newTestContract(t *testing.T, months, dueDay int) OrthoContract {
	t.Helper()
	c, err := NewOrthoContract(
		uuid.New(), uuid.New(), nil, nil,
		decimal.RequireFromString("200.00"),
		months, dueDay,
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		"", time.Now(),
	)
	require.NoError(t, err)
	return c
}

func TestNewOrthoContract_Defaults(t *testing.T) {
	c := newTestContract(t, 0, 0)

	assert.Equal(t, 24, c.TotalMonths)
	assert.Equal(t, 10, c.DueDay)
	assert.True(t, c.Status.Equal(valueobject.OrthoContractStatusActive))
	assert.Equal(t, "4800.00", c.TotalValue().StringFixed(2))
}

func TestNewOrthoContract_Validation(t *testing.T) {
	base := func(monthly string, months, dueDay int) error {
		_, err := NewOrthoContract(
			uuid.New(), uuid.New(), nil, nil,
			decimal.RequireFromString(monthly),
			months, dueDay, time.Now(), "", time.Now(),
		)
		return err
	}

	assert.ErrorIs(t, base("0", 24, 10), ErrInvalidAmount)
	assert.ErrorIs(t, base("-5", 24, 10), ErrInvalidAmount)
	assert.ErrorIs(t, base("200.00", -1, 10), ErrInvalidCount)
	assert.ErrorIs(t, base("200.00", 121, 10), ErrInvalidCount)
	assert.ErrorIs(t, base("200.00", 24, 29), ErrInvalidDueDay)
	assert.NoError(t, base("200.00", 1, 1))
	assert.NoError(t, base("200.00", 120, 28))
}

func TestOrthoContract_Schedule(t *testing.T) {
	c := newTestContract(t, 24, 10)

	schedule, err := c.Schedule()
	require.NoError(t, err)
	require.Len(t, schedule, 24)

	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), schedule[0].DueDate)
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), schedule[23].DueDate)

	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(c.TotalValue()))
}

func TestOrthoContract_Cancel(t *testing.T) {
	c := newTestContract(t, 24, 10)

	cancelled, err := c.Cancel()
	require.NoError(t, err)
	assert.True(t, cancelled.Status.Equal(valueobject.OrthoContractStatusCancelled))

	_, err = cancelled.Cancel()
	assert.ErrorIs(t, err, ErrConcurrentModification)

	completed := c
	completed.Status = valueobject.OrthoContractStatusCompleted
	_, err = completed.Cancel()
	assert.ErrorIs(t, err, ErrConcurrentModification)
}
