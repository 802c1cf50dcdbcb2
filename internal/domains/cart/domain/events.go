package domain

import "time"

// ChangeKind names the mutation that produced a Change.
type ChangeKind string

const (
	ChangeAdded           ChangeKind = "added"
	ChangeRemoved         ChangeKind = "removed"
	ChangeQuantityUpdated ChangeKind = "quantity_updated"
)

// Change describes one applied cart mutation. Items is the full cart after
// the mutation.
type Change struct {
	SessionID string
	Kind      ChangeKind
	Item      LineItem
	// Quantity is the amount added for ChangeAdded and the delta for
	// ChangeQuantityUpdated.
	Quantity int
	Items    []LineItem
}

// Notification is the transient confirmation shown after an add.
type Notification struct {
	Message   string
	ShownAt   time.Time
	ExpiresAt time.Time
}
