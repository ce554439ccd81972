package httpx

import (
	"errors"
	"net"
	"syscall"
)

// HTTPStatusCoder is implemented by errors that carry an HTTP status from a
// remote endpoint.
type HTTPStatusCoder interface {
	HTTPStatusCode() int
}

// StatusCode extracts the remote HTTP status from err, if any.
func StatusCode(err error) (int, bool) {
	var sc HTTPStatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatusCode(), true
	}
	return 0, false
}

// IsConnectionError reports whether err is a low-level transport failure
// (connection refused, host or network unreachable, host not found) as
// opposed to an application-level rejection.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsNotFound
	}
	return false
}
