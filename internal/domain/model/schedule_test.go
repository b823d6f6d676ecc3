package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSplitAmount_RemainderGoesToFirstInstallment(t *testing.T) {
	amounts, err := SplitAmount(decimal.NewFromFloat(100.00), 3)
	require.NoError(t, err)
	require.Len(t, amounts, 3)

	assert.Equal(t, "33.34", amounts[0].StringFixed(2))
	assert.Equal(t, "33.33", amounts[1].StringFixed(2))
	assert.Equal(t, "33.33", amounts[2].StringFixed(2))
}

func TestSplitAmount_SmallRemainder(t *testing.T) {
	// 10.00 / 3 = 3.33 base, 9.99 total, 0.01 remainder to the first.
	amounts, err := SplitAmount(decimal.NewFromFloat(10.00), 3)
	require.NoError(t, err)

	assert.Equal(t, "3.34", amounts[0].StringFixed(2))
	assert.Equal(t, "3.33", amounts[1].StringFixed(2))
	assert.Equal(t, "3.33", amounts[2].StringFixed(2))
}

func TestSplitAmount_SumInvariant(t *testing.T) {
	totals := []string{"100.00", "10.00", "0.05", "999.99", "1234.56", "33.31", "4800.00"}
	counts := []int{2, 3, 7, 12, 24, 36}

	for _, ts := range totals {
		total := decimal.RequireFromString(ts)
		for _, count := range counts {
			amounts, err := SplitAmount(total, count)
			if err != nil {
				// Sub-cent splits legitimately fail; nothing to sum.
				continue
			}
			sum := decimal.Zero
			for _, a := range amounts {
				assert.True(t, a.IsPositive(), "total=%s count=%d produced non-positive amount %s", ts, count, a)
				sum = sum.Add(a)
			}
			assert.True(t, sum.Equal(total), "total=%s count=%d sum=%s", ts, count, sum)
		}
	}
}

func TestSplitAmount_InvalidInputs(t *testing.T) {
	_, err := SplitAmount(decimal.Zero, 3)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = SplitAmount(decimal.NewFromInt(-50), 3)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = SplitAmount(decimal.NewFromInt(100), 1)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = SplitAmount(decimal.NewFromInt(100), 0)
	assert.ErrorIs(t, err, ErrInvalidCount)

	// 0.01 into 3 cannot produce positive installments.
	_, err = SplitAmount(decimal.NewFromFloat(0.01), 3)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAddMonths_PreservesDay(t *testing.T) {
	assert.Equal(t, date(2024, time.April, 15), AddMonths(date(2024, time.March, 15), 1))
	assert.Equal(t, date(2025, time.January, 15), AddMonths(date(2024, time.March, 15), 10))
}

func TestAddMonths_ClampsToShorterMonth(t *testing.T) {
	// Jan 31 + 1 month lands on the last day of February, not March.
	assert.Equal(t, date(2025, time.February, 28), AddMonths(date(2025, time.January, 31), 1))
	assert.Equal(t, date(2024, time.February, 29), AddMonths(date(2024, time.January, 31), 1), "leap year keeps the 29th")
	assert.Equal(t, date(2025, time.April, 30), AddMonths(date(2025, time.March, 31), 1))
	// After a clamp the following months use the original day again.
	assert.Equal(t, date(2025, time.March, 31), AddMonths(date(2025, time.January, 31), 2))
}

func TestAddMonths_YearRollover(t *testing.T) {
	assert.Equal(t, date(2025, time.January, 10), AddMonths(date(2024, time.December, 10), 1))
	assert.Equal(t, date(2026, time.June, 5), AddMonths(date(2024, time.June, 5), 24))
}

func TestGenerateInstallmentPlan(t *testing.T) {
	plan, err := GenerateInstallmentPlan(decimal.NewFromFloat(100.00), 3, date(2024, time.May, 10))
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, 1, plan[0].Sequence)
	assert.Equal(t, 3, plan[0].PlanTotal)
	assert.Equal(t, date(2024, time.May, 10), plan[0].DueDate)
	assert.Equal(t, date(2024, time.June, 10), plan[1].DueDate)
	assert.Equal(t, date(2024, time.July, 10), plan[2].DueDate)
	assert.Equal(t, "33.34", plan[0].Amount.StringFixed(2))
	assert.Equal(t, "Parcela 1/3", plan[0].Description)
	assert.Equal(t, "Parcela 3/3", plan[2].Description)
}

func TestGenerateInstallmentPlan_MonotonicDueDates(t *testing.T) {
	// Starting on the 31st exercises the clamp; dates must still strictly
	// increase and stay one calendar month apart.
	plan, err := GenerateInstallmentPlan(decimal.NewFromInt(1200), 12, date(2025, time.January, 31))
	require.NoError(t, err)

	for i := 1; i < len(plan); i++ {
		assert.True(t, plan[i].DueDate.After(plan[i-1].DueDate),
			"due date %d (%s) not after %d (%s)", i+1, plan[i].DueDate, i, plan[i-1].DueDate)
	}
	assert.Equal(t, date(2025, time.February, 28), plan[1].DueDate)
	assert.Equal(t, date(2025, time.March, 31), plan[2].DueDate)
	assert.Equal(t, date(2025, time.December, 31), plan[11].DueDate)
}

func TestGenerateRenegotiationPlan_Description(t *testing.T) {
	plan, err := GenerateRenegotiationPlan(decimal.NewFromFloat(260.00), 2, date(2024, time.July, 1))
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "Renegociação - Parcela 1/2", plan[0].Description)
	assert.Equal(t, "130.00", plan[0].Amount.StringFixed(2))
	assert.Equal(t, "130.00", plan[1].Amount.StringFixed(2))
}

func TestGenerateOrthoSchedule(t *testing.T) {
	// 24-month contract starting 2024-01-15, due day 10: first charge lands
	// on the first full month after the start.
	monthly := decimal.NewFromFloat(200.00)
	schedule, err := GenerateOrthoSchedule(monthly, 24, 10, date(2024, time.January, 15))
	require.NoError(t, err)
	require.Len(t, schedule, 24)

	assert.Equal(t, date(2024, time.February, 10), schedule[0].DueDate)
	assert.Equal(t, date(2026, time.January, 10), schedule[23].DueDate)

	sum := decimal.Zero
	for _, inst := range schedule {
		assert.Equal(t, "200.00", inst.Amount.StringFixed(2))
		sum = sum.Add(inst.Amount)
	}
	assert.Equal(t, "4800.00", sum.StringFixed(2))
	assert.Equal(t, "Ortodontia - Mês 1/24", schedule[0].Description)
	assert.Equal(t, "Ortodontia - Mês 24/24", schedule[23].Description)
}

func TestGenerateOrthoSchedule_InvalidDueDay(t *testing.T) {
	monthly := decimal.NewFromInt(150)
	for _, day := range []int{0, 29, 31, -1} {
		_, err := GenerateOrthoSchedule(monthly, 12, day, date(2024, time.January, 1))
		assert.ErrorIs(t, err, ErrInvalidDueDay, "dueDay=%d", day)
	}
}

func TestGenerateOrthoSchedule_InvalidInputs(t *testing.T) {
	_, err := GenerateOrthoSchedule(decimal.Zero, 12, 10, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = GenerateOrthoSchedule(decimal.NewFromInt(100), 0, 10, date(2024, time.January, 1))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidDueDay))
}

func TestDateOnly_AnchorsNearMidnight(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	lateNight := time.Date(2024, time.March, 31, 23, 30, 0, 0, loc)
	assert.Equal(t, date(2024, time.March, 31), DateOnly(lateNight))
}
