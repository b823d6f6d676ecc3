package model

import "errors"

// Sentinel errors shared across the domain. Handlers map these to HTTP
// statuses; use cases test for them with errors.Is.
var (
	// ErrInvalidAmount is returned when a monetary input is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidCount is returned when an installment plan has fewer than
	// two installments. A single installment is a direct charge, not a plan.
	ErrInvalidCount = errors.New("installment count must be at least 2")

	// ErrInvalidDueDay is returned when a fixed due day falls outside 1..28.
	// Days 29-31 are rejected so every month of the contract has the day.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 28")

	// ErrNothingToRenegotiate is returned when a renegotiation references no
	// genuinely open installments.
	ErrNothingToRenegotiate = errors.New("no open installments to renegotiate")

	// ErrConcurrentModification is returned when a conditional status update
	// matched zero rows: another actor settled or renegotiated the item
	// first. Callers should reload and retry or abort.
	ErrConcurrentModification = errors.New("item was modified concurrently")

	// ErrEntrySumMismatch is returned when allocation entries do not sum to
	// the transaction amount to the cent.
	ErrEntrySumMismatch = errors.New("entry amounts must sum to the transaction amount")

	// ErrInvalidInput is returned for malformed or inconsistent fields that
	// have no more specific sentinel.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when an entity does not exist within the
	// acting clinic.
	ErrNotFound = errors.New("not found")
)
