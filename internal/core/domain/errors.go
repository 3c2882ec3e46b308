package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailNotFound      = errors.New("email not found")
	ErrTherapistNotFound  = errors.New("therapist not found")
	ErrIncompleteBooking  = errors.New("please complete all required fields")
	ErrDateOutOfRange     = errors.New("date must be within the next 30 days")
	ErrSlotUnavailable    = errors.New("time slot is not available")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrRemote             = errors.New("remote service unavailable")
)

// ValidationError is a user-facing input error. It never changes state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError or one of the input
// sentinels that callers present as a validation message.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrIncompleteBooking) ||
		errors.Is(err, ErrDateOutOfRange) ||
		errors.Is(err, ErrSlotUnavailable)
}
