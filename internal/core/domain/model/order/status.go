package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered ──> Completed
//
// with Cancelled reachable from every pre-delivery state, Delivered also
// reachable directly from Ready, and Refunded reachable from Delivered,
// Completed and Cancelled as a correction path. Refunded is terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout completion.
	Pending

	// Confirmed indicates the merchant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is packed and awaiting handover.
	Ready

	// OutForDelivery indicates the order has left with a courier.
	OutForDelivery

	// Delivered indicates the order has reached the customer.
	Delivered

	// Completed closes a successfully fulfilled order.
	Completed

	// Cancelled closes an order that was abandoned before fulfillment.
	// Cancelling requires a human-readable reason.
	Cancelled

	// Refunded is the correction path for money returned to the customer.
	// Refunding requires a human-readable reason. Terminal.
	Refunded
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
		Refunded:       "REFUNDED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
		Refunded:       "REFUNDED",
	}
}

// allowedTransitions is the authoritative transition table of the order
// state machine. A status mapping to an empty set (Refunded) is terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Ready, Cancelled},
		Preparing:      {Ready, Cancelled},
		Ready:          {OutForDelivery, Delivered, Completed, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {Completed, Refunded},
		Completed:      {Refunded},
		Cancelled:      {Refunded},
		Refunded:       {},
	}
}

// InvalidTransitionError is the business-rule rejection for a disallowed
// status change. It names both the current and the requested state so the
// caller can render an actionable message.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Unwrap returns errs.ErrValueIsInvalid so errors.Is can classify this error.
func (e *InvalidTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Validate checks if the Status value is valid.
//
// Valid statuses are Pending through Refunded.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "OUT_FOR_DELIVERY".
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire status name such as "PENDING" or
// "OUT_FOR_DELIVERY". Returns a ValueIsInvalidError for unknown names.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// AllowedTargets returns the statuses reachable from s in one transition.
// The returned slice is a copy and safe to mutate.
func (s Status) AllowedTargets() []Status {
	targets := allowedTransitions()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether the state machine allows moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition against the state machine.
//
// Returns:
//   - (target, nil) when the transition is allowed
//   - (0, *InvalidTransitionError) naming both states otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, &InvalidTransitionError{From: s, To: target}
	}

	return target, nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions()[s]) == 0
}

// RequiresReason reports whether entering this status requires a
// human-readable reason. Cancellations and refunds always carry one.
func (s Status) RequiresReason() bool {
	return s == Cancelled || s == Refunded
}
