package models

import (
	"errors"
	"fmt"
)

// Error constants for enrollment operations
var (
	ErrClassNotFound       = errors.New("class not found")
	ErrNoPaymentMethod     = errors.New("no payment method selected")
	ErrInvalidBirthDate    = errors.New("birth date is not a parseable date")
	ErrMissingRegistration = errors.New("registration list missing from response")
)

// APIError is a rejection returned by the remote enrollment API with a
// user-facing message (the { "message": ... } envelope).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("enrollment API returned %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an APIError when it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
