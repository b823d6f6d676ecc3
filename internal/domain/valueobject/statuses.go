package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// ReceivableStatus – immutable value object
// ---------------------------------------------------------------------------

// ReceivableStatus represents the lifecycle stage of a receivable
// installment. "overdue" is a display state layered over open: anywhere the
// core asks whether an item is open, overdue rows qualify too.
type ReceivableStatus struct {
	value string
}

const (
	receivableStatusOpen         = "open"
	receivableStatusPaid         = "paid"
	receivableStatusOverdue      = "overdue"
	receivableStatusRenegotiated = "renegotiated"
)

var (
	ReceivableStatusOpen         = ReceivableStatus{value: receivableStatusOpen}
	ReceivableStatusPaid         = ReceivableStatus{value: receivableStatusPaid}
	ReceivableStatusOverdue      = ReceivableStatus{value: receivableStatusOverdue}
	ReceivableStatusRenegotiated = ReceivableStatus{value: receivableStatusRenegotiated}
)

var validReceivableStatuses = map[string]ReceivableStatus{
	receivableStatusOpen:         ReceivableStatusOpen,
	receivableStatusPaid:         ReceivableStatusPaid,
	receivableStatusOverdue:      ReceivableStatusOverdue,
	receivableStatusRenegotiated: ReceivableStatusRenegotiated,
}

// NewReceivableStatus creates a ReceivableStatus from a raw string.
func NewReceivableStatus(s string) (ReceivableStatus, error) {
	v, ok := validReceivableStatuses[s]
	if !ok {
		return ReceivableStatus{}, fmt.Errorf("invalid receivable status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ReceivableStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ReceivableStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ReceivableStatus) Equal(other ReceivableStatus) bool { return s.value == other.value }

// IsOpen reports whether the installment still accepts payments and balance
// calculations: open and overdue both qualify.
func (s ReceivableStatus) IsOpen() bool {
	return s.value == receivableStatusOpen || s.value == receivableStatusOverdue
}

// IsTerminal reports whether no further transition is allowed.
func (s ReceivableStatus) IsTerminal() bool {
	return s.value == receivableStatusPaid || s.value == receivableStatusRenegotiated
}

// ---------------------------------------------------------------------------
// PayableStatus – immutable value object
// ---------------------------------------------------------------------------

// PayableStatus represents the lifecycle stage of a payable.
type PayableStatus struct {
	value string
}

const (
	payableStatusOpen    = "open"
	payableStatusPaid    = "paid"
	payableStatusOverdue = "overdue"
)

var (
	PayableStatusOpen    = PayableStatus{value: payableStatusOpen}
	PayableStatusPaid    = PayableStatus{value: payableStatusPaid}
	PayableStatusOverdue = PayableStatus{value: payableStatusOverdue}
)

var validPayableStatuses = map[string]PayableStatus{
	payableStatusOpen:    PayableStatusOpen,
	payableStatusPaid:    PayableStatusPaid,
	payableStatusOverdue: PayableStatusOverdue,
}

// NewPayableStatus creates a PayableStatus from a raw string.
func NewPayableStatus(s string) (PayableStatus, error) {
	v, ok := validPayableStatuses[s]
	if !ok {
		return PayableStatus{}, fmt.Errorf("invalid payable status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PayableStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PayableStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PayableStatus) Equal(other PayableStatus) bool { return s.value == other.value }

// IsOpen reports whether the payable still accepts payments.
func (s PayableStatus) IsOpen() bool {
	return s.value == payableStatusOpen || s.value == payableStatusOverdue
}

// ---------------------------------------------------------------------------
// OrthoContractStatus – immutable value object
// ---------------------------------------------------------------------------

// OrthoContractStatus represents the lifecycle stage of an orthodontic
// contract.
type OrthoContractStatus struct {
	value string
}

const (
	orthoStatusActive    = "active"
	orthoStatusCompleted = "completed"
	orthoStatusCancelled = "cancelled"
)

var (
	OrthoContractStatusActive    = OrthoContractStatus{value: orthoStatusActive}
	OrthoContractStatusCompleted = OrthoContractStatus{value: orthoStatusCompleted}
	OrthoContractStatusCancelled = OrthoContractStatus{value: orthoStatusCancelled}
)

var validOrthoContractStatuses = map[string]OrthoContractStatus{
	orthoStatusActive:    OrthoContractStatusActive,
	orthoStatusCompleted: OrthoContractStatusCompleted,
	orthoStatusCancelled: OrthoContractStatusCancelled,
}

// NewOrthoContractStatus creates an OrthoContractStatus from a raw string.
func NewOrthoContractStatus(s string) (OrthoContractStatus, error) {
	v, ok := validOrthoContractStatuses[s]
	if !ok {
		return OrthoContractStatus{}, fmt.Errorf("invalid ortho contract status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s OrthoContractStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s OrthoContractStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s OrthoContractStatus) Equal(other OrthoContractStatus) bool { return s.value == other.value }
