package valueobject

import "fmt"

// FinancialType distinguishes money coming in from money going out.
type FinancialType string

const (
	FinancialIn  FinancialType = "IN"
	FinancialOut FinancialType = "OUT"
)

// NewFinancialType validates a raw transaction type.
func NewFinancialType(s string) (FinancialType, error) {
	switch FinancialType(s) {
	case FinancialIn, FinancialOut:
		return FinancialType(s), nil
	}
	return "", fmt.Errorf("invalid financial type: %q", s)
}

// PaymentMethod is how a transaction was paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentDebitCard    PaymentMethod = "debit_card"
	PaymentPix          PaymentMethod = "pix"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
	PaymentOther        PaymentMethod = "other"
)

var validPaymentMethods = map[PaymentMethod]struct{}{
	PaymentCash: {}, PaymentCreditCard: {}, PaymentDebitCard: {},
	PaymentPix: {}, PaymentBankTransfer: {}, PaymentCheck: {}, PaymentOther: {},
}

// NewPaymentMethod validates a raw payment method; empty defaults to cash.
func NewPaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentCash, nil
	}
	if _, ok := validPaymentMethods[PaymentMethod(s)]; !ok {
		return "", fmt.Errorf("invalid payment method: %q", s)
	}
	return PaymentMethod(s), nil
}

// OriginType records what produced a receivable.
type OriginType string

const (
	OriginManual        OriginType = "manual"
	OriginProcedure     OriginType = "procedure"
	OriginInstallment   OriginType = "installment"
	OriginOrthoContract OriginType = "ortho_contract"
)

var validOriginTypes = map[OriginType]struct{}{
	OriginManual: {}, OriginProcedure: {}, OriginInstallment: {}, OriginOrthoContract: {},
}

// NewOriginType validates a raw origin type; empty defaults to manual.
func NewOriginType(s string) (OriginType, error) {
	if s == "" {
		return OriginManual, nil
	}
	if _, ok := validOriginTypes[OriginType(s)]; !ok {
		return "", fmt.Errorf("invalid origin type: %q", s)
	}
	return OriginType(s), nil
}

// WaitlistStatus is a kanban column on the waitlist board. Moves between
// columns are unrestricted but CAS-guarded on the observed from-status.
type WaitlistStatus string

const (
	WaitlistNew         WaitlistStatus = "NEW"
	WaitlistContacting  WaitlistStatus = "CONTACTING"
	WaitlistScheduled   WaitlistStatus = "SCHEDULED"
	WaitlistUnreachable WaitlistStatus = "UNREACHABLE"
	WaitlistNoShow      WaitlistStatus = "NO_SHOW"
	WaitlistCancelled   WaitlistStatus = "CANCELLED"
	WaitlistDone        WaitlistStatus = "DONE"
)

var validWaitlistStatuses = map[WaitlistStatus]struct{}{
	WaitlistNew: {}, WaitlistContacting: {}, WaitlistScheduled: {},
	WaitlistUnreachable: {}, WaitlistNoShow: {}, WaitlistCancelled: {}, WaitlistDone: {},
}

// NewWaitlistStatus validates a raw waitlist status.
func NewWaitlistStatus(s string) (WaitlistStatus, error) {
	if _, ok := validWaitlistStatuses[WaitlistStatus(s)]; !ok {
		return "", fmt.Errorf("invalid waitlist status: %q", s)
	}
	return WaitlistStatus(s), nil
}

// AppointmentStatus is the lifecycle stage of a scheduled appointment.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

var validAppointmentStatuses = map[AppointmentStatus]struct{}{
	AppointmentScheduled: {}, AppointmentConfirmed: {}, AppointmentInProgress: {},
	AppointmentCompleted: {}, AppointmentCancelled: {}, AppointmentNoShow: {},
}

// NewAppointmentStatus validates a raw appointment status; empty defaults to
// scheduled.
func NewAppointmentStatus(s string) (AppointmentStatus, error) {
	if s == "" {
		return AppointmentScheduled, nil
	}
	if _, ok := validAppointmentStatuses[AppointmentStatus(s)]; !ok {
		return "", fmt.Errorf("invalid appointment status: %q", s)
	}
	return AppointmentStatus(s), nil
}

// BudgetType distinguishes orthodontic quotes from specialty treatment quotes.
type BudgetType string

const (
	BudgetOrtho     BudgetType = "ORTHO"
	BudgetSpecialty BudgetType = "SPECIALTY"
)

// NewBudgetType validates a raw budget type.
func NewBudgetType(s string) (BudgetType, error) {
	switch BudgetType(s) {
	case BudgetOrtho, BudgetSpecialty:
		return BudgetType(s), nil
	}
	return "", fmt.Errorf("invalid budget type: %q", s)
}

// OrthoType is the orthodontic treatment modality on an ORTHO budget.
type OrthoType string

const (
	OrthoTraditional OrthoType = "TRADICIONAL"
	OrthoInvisalign  OrthoType = "INVISALIGN"
)

// NewOrthoType validates a raw ortho type; empty is allowed (non-ortho budgets).
func NewOrthoType(s string) (OrthoType, error) {
	switch OrthoType(s) {
	case "", OrthoTraditional, OrthoInvisalign:
		return OrthoType(s), nil
	}
	return "", fmt.Errorf("invalid ortho type: %q", s)
}

// BudgetStatus is the lifecycle stage of a budget quote.
type BudgetStatus string

const (
	BudgetPending   BudgetStatus = "pending"
	BudgetApproved  BudgetStatus = "approved"
	BudgetCancelled BudgetStatus = "cancelled"
)

// NewBudgetStatus validates a raw budget status; empty defaults to pending.
func NewBudgetStatus(s string) (BudgetStatus, error) {
	switch BudgetStatus(s) {
	case "":
		return BudgetPending, nil
	case BudgetPending, BudgetApproved, BudgetCancelled:
		return BudgetStatus(s), nil
	}
	return "", fmt.Errorf("invalid budget status: %q", s)
}
