package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/internal/domain/valueobject"
	"github.com/dentara/dentara/pkg/money"
)

// BudgetUpsell is an optional or mandatory add-on priced as deltas over
// the base plan. Stored as jsonb on the budget row.
type BudgetUpsell struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Kind         string          `json:"type"`
	MonthlyDelta decimal.Decimal `json:"monthlyDelta"`
	OneTimeDelta decimal.Decimal `json:"oneTimeDelta"`
}

// BudgetItem is one line of a specialty budget. Stored as jsonb.
type BudgetItem struct {
	ID        string          `json:"id"`
	Procedure string          `json:"procedure"`
	Benefit   string          `json:"benefit"`
	Entry     decimal.Decimal `json:"entry"`
	Qty       int             `json:"qty"`
	Total     decimal.Decimal `json:"total"`
	TotalCash decimal.Decimal `json:"totalCash"`
}

// Budget is a treatment proposal. ORTHO budgets price a monthly value
// over N installments with a fixed due day; SPECIALTY budgets price
// itemized procedures against a total.
type Budget struct {
	ID               uuid.UUID
	ClinicID         uuid.UUID
	PatientID        *uuid.UUID
	Type             valueobject.BudgetType
	OrthoType        valueobject.OrthoType
	Model            string
	MonthlyValue     decimal.Decimal
	Installments     int
	Total            decimal.Decimal
	CashValue        decimal.Decimal
	Upsells          []BudgetUpsell
	Items            []BudgetItem
	DueDay           *int
	IsCash           bool
	IsPlanComplement bool
	Notes            string
	Status           valueobject.BudgetStatus
	CreatedBy        *uuid.UUID
	CreatedAt        time.Time
}

func NewBudget(
	clinicID uuid.UUID,
	patientID, createdBy *uuid.UUID,
	budgetType valueobject.BudgetType,
	orthoType valueobject.OrthoType,
	model string,
	monthlyValue decimal.Decimal,
	installments int,
	total, cashValue decimal.Decimal,
	upsells []BudgetUpsell,
	items []BudgetItem,
	dueDay *int,
	isCash, isPlanComplement bool,
	notes string,
	now time.Time,
) (Budget, error) {
	if installments < 0 {
		return Budget{}, ErrInvalidCount
	}
	if dueDay != nil && (*dueDay < 1 || *dueDay > 28) {
		return Budget{}, ErrInvalidDueDay
	}

	return Budget{
		ID:               uuid.New(),
		ClinicID:         clinicID,
		PatientID:        patientID,
		Type:             budgetType,
		OrthoType:        orthoType,
		Model:            model,
		MonthlyValue:     money.RoundCents(monthlyValue),
		Installments:     installments,
		Total:            money.RoundCents(total),
		CashValue:        money.RoundCents(cashValue),
		Upsells:          upsells,
		Items:            items,
		DueDay:           dueDay,
		IsCash:           isCash,
		IsPlanComplement: isPlanComplement,
		Notes:            notes,
		Status:           valueobject.BudgetPending,
		CreatedBy:        createdBy,
		CreatedAt:        now,
	}, nil
}

// WithStatus transitions the budget. Only pending budgets may move;
// approved and cancelled are terminal.
func (b Budget) WithStatus(s valueobject.BudgetStatus) (Budget, error) {
	if b.Status != valueobject.BudgetPending {
		return b, ErrConcurrentModification
	}
	next := b
	next.Status = s
	return next, nil
}

// Quote renders the budget's payment schedule: fixed-day monthly billing
// when a due day is set, otherwise an anniversary-date split of the total.
// Cash budgets have no schedule.
func (b Budget) Quote(start time.Time) ([]Installment, error) {
	if b.IsCash || b.Installments == 0 {
		return nil, nil
	}
	if b.DueDay != nil {
		return GenerateOrthoSchedule(b.MonthlyValue, b.Installments, *b.DueDay, start)
	}
	if b.Installments == 1 {
		if !b.Total.IsPositive() {
			return nil, ErrInvalidAmount
		}
		return []Installment{{
			Sequence:    1,
			PlanTotal:   1,
			DueDate:     DateOnly(start),
			Amount:      b.Total,
			Description: "Parcela 1/1",
		}}, nil
	}
	return GenerateInstallmentPlan(b.Total, b.Installments, DateOnly(start))
}
