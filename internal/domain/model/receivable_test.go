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

func newTestReceivable(t *testing.T, amount string) Receivable {
	t.Helper()
	r, err := NewReceivable(
		uuid.New(), nil, valueobject.OriginManual,
		decimal.RequireFromString(amount),
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		"Consulta",
		time.Now(),
	)
	require.NoError(t, err)
	return r
}

func TestNewReceivable_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-10.00"} {
		_, err := NewReceivable(
			uuid.New(), nil, valueobject.OriginManual,
			decimal.RequireFromString(amount),
			time.Now(), "", time.Now(),
		)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", amount)
	}
}

func TestReceivable_SettleFull(t *testing.T) {
	r := newTestReceivable(t, "150.00")
	now := time.Now()

	settled, err := r.Settle(decimal.RequireFromString("150.00"), now)
	require.NoError(t, err)

	assert.True(t, settled.Status.Equal(valueobject.ReceivableStatusPaid))
	assert.True(t, settled.PaidAmount.Equal(r.Amount))
	require.NotNil(t, settled.PaidAt)
	assert.Equal(t, now, *settled.PaidAt)
	assert.True(t, settled.Outstanding().IsZero())
}

func TestReceivable_SettlePartialStaysOpen(t *testing.T) {
	r := newTestReceivable(t, "150.00")

	settled, err := r.Settle(decimal.RequireFromString("50.00"), time.Now())
	require.NoError(t, err)

	assert.True(t, settled.Status.Equal(valueobject.ReceivableStatusOpen))
	assert.Nil(t, settled.PaidAt)
	assert.Equal(t, "100", settled.Outstanding().String())

	// A second payment covering the remainder closes it.
	final, err := settled.Settle(decimal.RequireFromString("100.00"), time.Now())
	require.NoError(t, err)
	assert.True(t, final.Status.Equal(valueobject.ReceivableStatusPaid))
}

func TestReceivable_SettleOverdueAllowed(t *testing.T) {
	r := newTestReceivable(t, "80.00")
	r.Status = valueobject.ReceivableStatusOverdue

	settled, err := r.Settle(decimal.RequireFromString("80.00"), time.Now())
	require.NoError(t, err)
	assert.True(t, settled.Status.Equal(valueobject.ReceivableStatusPaid))
}

func TestReceivable_SettleTerminalRejected(t *testing.T) {
	for _, status := range []valueobject.ReceivableStatus{
		valueobject.ReceivableStatusPaid,
		valueobject.ReceivableStatusRenegotiated,
	} {
		r := newTestReceivable(t, "80.00")
		r.Status = status

		_, err := r.Settle(decimal.RequireFromString("10.00"), time.Now())
		assert.ErrorIs(t, err, ErrConcurrentModification, "status %s", status)
	}
}

func TestReceivable_SettleRejectsNonPositive(t *testing.T) {
	r := newTestReceivable(t, "80.00")
	_, err := r.Settle(decimal.Zero, time.Now())
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestReceivable_MarkRenegotiated(t *testing.T) {
	r := newTestReceivable(t, "80.00")

	flipped, err := r.MarkRenegotiated()
	require.NoError(t, err)
	assert.True(t, flipped.Status.Equal(valueobject.ReceivableStatusRenegotiated))

	_, err = flipped.MarkRenegotiated()
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestOutstandingBalance_SkipsTerminal(t *testing.T) {
	open := newTestReceivable(t, "100.00")
	partial := newTestReceivable(t, "100.00")
	partial.PaidAmount = decimal.RequireFromString("30.00")
	overdue := newTestReceivable(t, "50.00")
	overdue.Status = valueobject.ReceivableStatusOverdue
	paid := newTestReceivable(t, "999.00")
	paid.Status = valueobject.ReceivableStatusPaid

	balance := OutstandingBalance([]Receivable{open, partial, overdue, paid})
	assert.Equal(t, "220", balance.String())
}

func TestReceivableFromInstallment(t *testing.T) {
	plan, err := GenerateInstallmentPlan(
		decimal.RequireFromString("100.00"), 3,
		time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	clinicID := uuid.New()
	patientID := uuid.New()
	r := ReceivableFromInstallment(plan[1], clinicID, &patientID, valueobject.OriginInstallment, nil, time.Now())

	assert.Equal(t, clinicID, r.ClinicID)
	require.NotNil(t, r.InstallmentNum)
	assert.Equal(t, 2, *r.InstallmentNum)
	require.NotNil(t, r.TotalInstallments)
	assert.Equal(t, 3, *r.TotalInstallments)
	assert.Equal(t, "33.33", r.Amount.StringFixed(2))
	assert.True(t, r.Status.Equal(valueobject.ReceivableStatusOpen))
}
