package types

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrRegionNotFound  = errors.New("region not found")
)

const serviceUnavailableMessage = "an external service is currently unavailable"

// ServiceUnavailableError carries a fixed user-facing message. The original
// failure is kept as the wrapped cause for diagnostics but is never shown to
// the caller.
type ServiceUnavailableError struct {
	cause error
}

func NewServiceUnavailableError(cause error) *ServiceUnavailableError {
	return &ServiceUnavailableError{cause: cause}
}

func (e *ServiceUnavailableError) Error() string { return serviceUnavailableMessage }

func (e *ServiceUnavailableError) Unwrap() error { return e.cause }
