package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one dated charge of a proposed payment plan. The generators
// below are pure: they return installments for the caller to persist as
// receivables, they never touch storage themselves.
type Installment struct {
	Sequence    int             // 1-based position within the plan
	PlanTotal   int             // total count of installments in the plan
	DueDate     time.Time       // calendar date, midnight UTC
	Amount      decimal.Decimal // two-decimal precision
	Description string
}

// SplitAmount divides total into count installment amounts that sum exactly
// to total, in cents. The per-installment base is total/count rounded to two
// decimals; the rounding remainder, positive or negative, is folded into the
// first amount so the sum invariant holds exactly.
func SplitAmount(total decimal.Decimal, count int) ([]decimal.Decimal, error) {
	if !total.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if count < 2 {
		return nil, ErrInvalidCount
	}

	n := decimal.NewFromInt(int64(count))
	base := total.DivRound(n, 2)
	remainder := total.Sub(base.Mul(n))
	first := base.Add(remainder)

	// Sub-cent totals (e.g. 0.01 split in 3) would produce zero or negative
	// installments; no valid plan exists for them.
	if !first.IsPositive() || !base.IsPositive() {
		return nil, ErrInvalidAmount
	}

	amounts := make([]decimal.Decimal, count)
	amounts[0] = first
	for i := 1; i < count; i++ {
		amounts[i] = base
	}
	return amounts, nil
}

// AddMonths advances a calendar date by the given number of months,
// preserving the day-of-month. When the target month is shorter the day is
// clamped to its last day (Jan 31 + 1 month = Feb 28/29), unlike
// time.AddDate which overflows into the following month.
func AddMonths(d time.Time, months int) time.Time {
	year, month, day := d.Date()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

// DateOnly strips the time-of-day and timezone from t, anchoring it as a
// calendar date at midnight UTC. All due-date arithmetic goes through this so
// a timestamp near a midnight boundary cannot shift the date.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// GenerateInstallmentPlan splits total into count monthly installments
// starting at firstDue (anniversary mode: installment i is due i-1 months
// after the first).
func GenerateInstallmentPlan(total decimal.Decimal, count int, firstDue time.Time) ([]Installment, error) {
	return amortize(total, count, firstDue, "Parcela %d/%d")
}

// GenerateRenegotiationPlan builds the replacement plan for a renegotiated
// balance. Identical to GenerateInstallmentPlan except for the description.
func GenerateRenegotiationPlan(outstanding decimal.Decimal, count int, firstDue time.Time) ([]Installment, error) {
	return amortize(outstanding, count, firstDue, "Renegociação - Parcela %d/%d")
}

func amortize(total decimal.Decimal, count int, firstDue time.Time, format string) ([]Installment, error) {
	amounts, err := SplitAmount(total, count)
	if err != nil {
		return nil, err
	}

	first := DateOnly(firstDue)
	plan := make([]Installment, count)
	for i := 0; i < count; i++ {
		plan[i] = Installment{
			Sequence:    i + 1,
			PlanTotal:   count,
			DueDate:     AddMonths(first, i),
			Amount:      amounts[i],
			Description: fmt.Sprintf(format, i+1, count),
		}
	}
	return plan, nil
}

// GenerateOrthoSchedule produces the monthly billing schedule for an
// orthodontic contract: months equal charges of monthly each, the first due
// one calendar month after start, every due date pinned to dueDay.
func GenerateOrthoSchedule(monthly decimal.Decimal, months, dueDay int, start time.Time) ([]Installment, error) {
	if !monthly.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if months < 1 {
		return nil, fmt.Errorf("total months must be at least 1, got %d", months)
	}
	if dueDay < 1 || dueDay > 28 {
		return nil, ErrInvalidDueDay
	}

	year, month, _ := DateOnly(start).Date()
	schedule := make([]Installment, months)
	for i := 1; i <= months; i++ {
		schedule[i-1] = Installment{
			Sequence:    i,
			PlanTotal:   months,
			DueDate:     time.Date(year, month+time.Month(i), dueDay, 0, 0, 0, 0, time.UTC),
			Amount:      monthly,
			Description: fmt.Sprintf("Ortodontia - Mês %d/%d", i, months),
		}
	}
	return schedule, nil
}
