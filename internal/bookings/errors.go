package bookings

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// The intake workflow fails at exactly one of three stages. Each stage gets
// its own error type so the controller can report which one, and so tests can
// assert that later stages never ran.

// ValidationError reports missing required fields. No side effect occurred.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Please fill in all required fields: %s", strings.Join(e.Missing, ", "))
}

// PersistenceError wraps a store failure on insert. Nothing was saved and no
// notification was attempted; the store's message surfaces verbatim.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NotificationError reports a failed email dispatch after a successful
// insert. The booking identified by BookingID exists and is not rolled back.
type NotificationError struct {
	BookingID uuid.UUID
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("Failed to send email notification: %s", e.Err.Error())
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
