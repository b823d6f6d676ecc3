package event

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/pkg/events"
)

// Event types published to the clinic events topic.
const (
	TypeInstallmentPlanCreated = "financial.installment_plan.created"
	TypeReceivableSettled      = "financial.receivable.settled"
	TypePlanRenegotiated       = "financial.plan.renegotiated"
	TypePayableSettled         = "financial.payable.settled"
	TypeTransactionRecorded    = "financial.transaction.recorded"
	TypeOrthoContractCreated   = "financial.ortho_contract.created"
	TypeOrthoContractCancelled = "financial.ortho_contract.cancelled"
	TypeItemsMarkedOverdue     = "financial.overdue.marked"
	TypePatientCreated         = "clinic.patient.created"
	TypeWaitlistEntryMoved     = "clinic.waitlist_entry.moved"
	TypeBudgetStatusChanged    = "clinic.budget.status_changed"
)

// InstallmentPlanCreated is emitted after a plan's receivable batch is
// persisted.
type InstallmentPlanCreated struct {
	events.BaseEvent
	PatientID    string          `json:"patient_id,omitempty"`
	Installments int             `json:"installments"`
	Total        decimal.Decimal `json:"total"`
}

func NewInstallmentPlanCreated(clinicID uuid.UUID, patientID *uuid.UUID, firstReceivableID uuid.UUID, installments int, total decimal.Decimal) InstallmentPlanCreated {
	e := InstallmentPlanCreated{
		BaseEvent:    events.NewBaseEvent(TypeInstallmentPlanCreated, firstReceivableID.String(), "receivable", clinicID.String()),
		Installments: installments,
		Total:        total,
	}
	if patientID != nil {
		e.PatientID = patientID.String()
	}
	return e
}

// ReceivableSettled is emitted when a payment is recorded against a
// receivable, full or partial.
type ReceivableSettled struct {
	events.BaseEvent
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Closed      bool            `json:"closed"`
}

func NewReceivableSettled(clinicID, receivableID uuid.UUID, paid, outstanding decimal.Decimal, closed bool) ReceivableSettled {
	return ReceivableSettled{
		BaseEvent:   events.NewBaseEvent(TypeReceivableSettled, receivableID.String(), "receivable", clinicID.String()),
		Paid:        paid,
		Outstanding: outstanding,
		Closed:      closed,
	}
}

// PlanRenegotiated is emitted after open receivables are flipped and the
// replacement plan is persisted.
type PlanRenegotiated struct {
	events.BaseEvent
	RenegotiatedCount int             `json:"renegotiated_count"`
	NewInstallments   int             `json:"new_installments"`
	Outstanding       decimal.Decimal `json:"outstanding"`
}

func NewPlanRenegotiated(clinicID, firstNewID uuid.UUID, renegotiated, newInstallments int, outstanding decimal.Decimal) PlanRenegotiated {
	return PlanRenegotiated{
		BaseEvent:         events.NewBaseEvent(TypePlanRenegotiated, firstNewID.String(), "receivable", clinicID.String()),
		RenegotiatedCount: renegotiated,
		NewInstallments:   newInstallments,
		Outstanding:       outstanding,
	}
}

// PayableSettled is emitted when a payable is paid.
type PayableSettled struct {
	events.BaseEvent
	Amount decimal.Decimal `json:"amount"`
}

func NewPayableSettled(clinicID, payableID uuid.UUID, amount decimal.Decimal) PayableSettled {
	return PayableSettled{
		BaseEvent: events.NewBaseEvent(TypePayableSettled, payableID.String(), "payable", clinicID.String()),
		Amount:    amount,
	}
}

// TransactionRecorded is emitted for every cash movement.
type TransactionRecorded struct {
	events.BaseEvent
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
}

func NewTransactionRecorded(clinicID, transactionID uuid.UUID, txType string, amount decimal.Decimal) TransactionRecorded {
	return TransactionRecorded{
		BaseEvent:       events.NewBaseEvent(TypeTransactionRecorded, transactionID.String(), "financial_transaction", clinicID.String()),
		TransactionType: txType,
		Amount:          amount,
	}
}

// OrthoContractCreated is emitted with the contract and its batch size.
type OrthoContractCreated struct {
	events.BaseEvent
	PatientID   string          `json:"patient_id"`
	TotalMonths int             `json:"total_months"`
	Monthly     decimal.Decimal `json:"monthly"`
}

func NewOrthoContractCreated(clinicID, contractID, patientID uuid.UUID, totalMonths int, monthly decimal.Decimal) OrthoContractCreated {
	return OrthoContractCreated{
		BaseEvent:   events.NewBaseEvent(TypeOrthoContractCreated, contractID.String(), "ortho_contract", clinicID.String()),
		PatientID:   patientID.String(),
		TotalMonths: totalMonths,
		Monthly:     monthly,
	}
}

// OrthoContractCancelled is emitted after the contract and its open
// receivables are closed out.
type OrthoContractCancelled struct {
	events.BaseEvent
	ClosedReceivables int `json:"closed_receivables"`
}

func NewOrthoContractCancelled(clinicID, contractID uuid.UUID, closedReceivables int) OrthoContractCancelled {
	return OrthoContractCancelled{
		BaseEvent:         events.NewBaseEvent(TypeOrthoContractCancelled, contractID.String(), "ortho_contract", clinicID.String()),
		ClosedReceivables: closedReceivables,
	}
}

// ItemsMarkedOverdue is emitted by the nightly job, one event per clinic
// that had items flip.
type ItemsMarkedOverdue struct {
	events.BaseEvent
	Receivables int `json:"receivables"`
	Payables    int `json:"payables"`
}

func NewItemsMarkedOverdue(clinicID uuid.UUID, receivables, payables int) ItemsMarkedOverdue {
	return ItemsMarkedOverdue{
		BaseEvent:   events.NewBaseEvent(TypeItemsMarkedOverdue, clinicID.String(), "clinic", clinicID.String()),
		Receivables: receivables,
		Payables:    payables,
	}
}

// PatientCreated is emitted when a patient record is created, including
// bulk imports.
type PatientCreated struct {
	events.BaseEvent
	Name string `json:"name"`
}

func NewPatientCreated(clinicID, patientID uuid.UUID, name string) PatientCreated {
	return PatientCreated{
		BaseEvent: events.NewBaseEvent(TypePatientCreated, patientID.String(), "patient", clinicID.String()),
		Name:      name,
	}
}

// WaitlistEntryMoved is emitted after a kanban move commits.
type WaitlistEntryMoved struct {
	events.BaseEvent
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}

func NewWaitlistEntryMoved(clinicID, entryID uuid.UUID, from, to string) WaitlistEntryMoved {
	return WaitlistEntryMoved{
		BaseEvent:  events.NewBaseEvent(TypeWaitlistEntryMoved, entryID.String(), "waitlist_entry", clinicID.String()),
		FromStatus: from,
		ToStatus:   to,
	}
}

// BudgetStatusChanged is emitted on approve and cancel.
type BudgetStatusChanged struct {
	events.BaseEvent
	Status string `json:"status"`
}

func NewBudgetStatusChanged(clinicID, budgetID uuid.UUID, status string) BudgetStatusChanged {
	return BudgetStatusChanged{
		BaseEvent: events.NewBaseEvent(TypeBudgetStatusChanged, budgetID.String(), "budget", clinicID.String()),
		Status:    status,
	}
}
