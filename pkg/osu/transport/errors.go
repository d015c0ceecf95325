package transport

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. The underlying net/http or
// encoding/json error stays reachable through errors.As.
var (
	ErrRequest = errors.New("osu api request failed")
	ErrStatus  = errors.New("osu api unexpected status")
	ErrDecode  = errors.New("osu api decode failed")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Endpoint   string
	StatusCode int
	// Message is the service's "error" field when the body carried one.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %d: %s", ErrStatus, e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s: %d", ErrStatus, e.Endpoint, e.StatusCode)
}

// Is lets errors.Is(err, ErrStatus) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}
