// Package boost defines the promotion lifecycle state machine and the
// financial settlement rules for boosted job listings.
//
// Valid status graph:
//
//	PENDING ──► ACTIVE ──► EXPIRED (time-driven)
//	    │          │
//	    └──────────┴──► REJECTED (admin rejection / refund override)
//
// EXPIRED and REJECTED are terminal states. No path ever returns to
// PENDING.
package boost

import "fmt"

// Status values mirror the boost_status column in the boosts table.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusRejected Status = "rejected"

	// StatusApproved is a legacy label for an approved boost. Older
	// records may carry it; ParseStatus normalizes it to ACTIVE and the
	// engine never writes it.
	StatusApproved Status = "approved"
)

// PaymentStatus tracks settlement of the boost price. The payment itself
// is external; we only record the outcome.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Category is the plan tier label, snapshotted onto each boost at
// creation so later plan edits never retype an existing boost.
type Category string

const (
	CategoryBasic      Category = "basic"
	CategoryStandard   Category = "standard"
	CategoryPremium    Category = "premium"
	CategoryEnterprise Category = "enterprise"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending: {StatusActive, StatusRejected},
	StatusActive:  {StatusExpired, StatusRejected},
	// EXPIRED and REJECTED are terminal — no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values. The legacy "approved" label normalizes to ACTIVE.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusActive, StatusExpired, StatusRejected:
		return st, nil
	case StatusApproved:
		return StatusActive, nil
	}
	return "", fmt.Errorf("unknown boost status %q", s)
}

// ParsePaymentStatus converts a raw string to a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(s)
	switch ps {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return ps, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// ParseCategory converts a raw string to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryBasic, CategoryStandard, CategoryPremium, CategoryEnterprise:
		return c, nil
	}
	return "", fmt.Errorf("unknown boost category %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by
// the state machine.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state — no outgoing transitions
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true when the status has no outgoing transitions.
func IsTerminal(s Status) bool {
	_, ok := validTransitions[s]
	return !ok
}
