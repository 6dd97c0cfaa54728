package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// The enumeration is closed: Open is assigned at creation and Closed is the
// terminal state. No operation of the ordering core performs the transition
// into Closed; that belongs to external collaborators, which go through the
// Close guard below so the state machine stays enforced in one place.
//
// State transitions:
//
//	Open ──> Closed
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status assigned when an order is created.
	Open

	// Closed indicates the order has been finalized.
	// This is a terminal state with no further transitions allowed.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "Open",
		Closed:  "Closed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:   "Open",
		Closed: "Closed",
	}
}

// StatusFromString parses a status from its string representation.
// Matching is case-insensitive. Returns an error for anything outside
// the closed enumeration.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, value) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Open, Closed. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Open -> Closed
//
// Invalid transitions:
//   - Closed -> Closed (already closed)
//   - Unknown -> Closed (invalid initial state)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Close() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to close", s.String()),
		)
	}

	return Closed, nil
}
