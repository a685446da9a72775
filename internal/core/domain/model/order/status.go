package order

import (
	"fmt"
	"time"

	"orders/internal/pkg/errs"
)

// CancelWindow is the maximum age an order may reach and still be canceled.
// The age is measured from the order's immutable creation timestamp to the
// wall-clock time of the cancellation request.
const CancelWindow = 10 * time.Minute

// Transition denial reasons surfaced to clients.
const (
	ReasonTooOld            = "too old"
	ReasonWrongStatus       = "wrong status"
	ReasonIllegalTransition = "illegal transition"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Placed ──> Sent ──> Canceled
//	(external ack)  (within 10 minutes only)
//
// Status is a value object with no memory: every decision is a pure function
// of the current value and the order age passed in by the caller, which keeps
// the state machine trivially testable in isolation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the status of an order that has been received but not yet
	// acknowledged by the downstream restaurant notification process.
	Placed

	// Sent is the status of an order that has been acknowledged and forwarded
	// downstream. Public creation writes orders directly in this status.
	Sent

	// Canceled is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Placed:   "PLACED",
		Sent:     "SENT",
		Canceled: "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:   "PLACED",
		Sent:     "SENT",
		Canceled: "CANCELED",
	}
}

// StatusFromString parses the persisted string representation of a status.
// Used when reconstructing orders from storage or external input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, Sent, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("PLACED", "SENT", "CANCELED").
// Invalid values render as "UNKNOWN". Implements fmt.Stringer and is safe to
// call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Acknowledge transitions the status to Sent.
//
// Valid transitions:
//   - Placed -> Sent (downstream acknowledgment)
//
// Any other current status is denied with reason "illegal transition".
// This transition is driven by the external acknowledgment process, never by
// the public edit/cancel operations.
func (s Status) Acknowledge() (Status, error) {
	if s != Placed {
		return 0, errs.NewInvalidTransitionError(s.String(), Sent.String(), ReasonIllegalTransition)
	}

	return Sent, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Sent -> Canceled, only while age <= CancelWindow
//
// Denials:
//   - Sent but older than CancelWindow: reason "too old", with the elapsed
//     minutes carried in the error cause
//   - any other current status: reason "wrong status"
//
// age is the duration between the order's creation timestamp and the
// wall-clock time of the cancellation request.
func (s Status) Cancel(age time.Duration) (Status, error) {
	if s != Sent {
		return 0, errs.NewInvalidTransitionError(s.String(), Canceled.String(), ReasonWrongStatus)
	}

	if age > CancelWindow {
		return 0, errs.NewInvalidTransitionErrorWithCause(
			s.String(), Canceled.String(), ReasonTooOld,
			fmt.Errorf("order was created %.2f minutes ago, orders older than %.0f minutes cannot be canceled",
				age.Minutes(), CancelWindow.Minutes()),
		)
	}

	return Canceled, nil
}

// ValidateEdit checks whether the order body may be replaced in the current
// status. Editing is not a status transition: it is allowed only while Sent
// and never changes the status itself.
func (s Status) ValidateEdit() error {
	if s != Sent {
		return errs.NewInvalidTransitionError(s.String(), "EDIT", ReasonWrongStatus)
	}
	return nil
}
