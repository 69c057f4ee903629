package contact

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// The contact flow fails the same way the booking intake does: at validation,
// at the insert, or at the notification send.

type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Please fill in all required fields: %s", strings.Join(e.Missing, ", "))
}

type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NotificationError means the message was saved but the operator email did
// not go out. The record identified by MessageID is kept.
type NotificationError struct {
	MessageID uuid.UUID
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("Failed to send email notification: %s", e.Err.Error())
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
