package region

import "fmt"

// APIError is returned when the region service answers with a non-2xx status.
// It implements httpx.HTTPStatusCoder so callers can classify the rejection.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("region service returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("region service returned status %d", e.StatusCode)
}

func (e *APIError) HTTPStatusCode() int { return e.StatusCode }
