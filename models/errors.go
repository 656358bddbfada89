package models

import "errors"

// ValidationError reports a malformed field before any mutation happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// State-machine violations. These are not retryable.
var (
	ErrRoomNotAvailable  = errors.New("room is not available")
	ErrAlreadyPaid       = errors.New("reservation is already paid")
	ErrPaymentRequired   = errors.New("cannot check in, payment not received")
	ErrReservationClosed = errors.New("reservation is already checked out or cancelled")
	ErrRoomNotLoaded     = errors.New("reservation has no room attached")
)

// Not-found sentinels surfaced by the storage layer.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
)
