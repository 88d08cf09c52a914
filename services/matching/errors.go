package matching

import (
	"errors"
	"fmt"
)

// ErrConfirmationInFlight is returned when another confirmation with the same
// idempotency key has not finished yet.
var ErrConfirmationInFlight = errors.New("confirmation with this idempotency key is in progress")

type BookingCreationError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingCreationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *BookingCreationError) Unwrap() error {
	return e.Err
}

type WorkerUnavailableError struct {
	Code     string
	Message  string
	WorkerID string
}

func (e *WorkerUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s (worker %s)", e.Code, e.Message, e.WorkerID)
}

func NewWorkerUnavailableError(workerID string) error {
	return &WorkerUnavailableError{
		Code:     "workerUnavailable",
		Message:  "worker is no longer available for booking",
		WorkerID: workerID,
	}
}

// InvalidIntentError rejects a confirmation whose intent could not have come from a
// MATCHED intake.
type InvalidIntentError struct {
	Code    string
	Message string
}

func (e *InvalidIntentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidIntentError(message string) error {
	return &InvalidIntentError{Code: "invalidIntent", Message: message}
}
