package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

type Endpoint string

const (
	EndpointCurrent  Endpoint = "current"
	EndpointForecast Endpoint = "forecast"
)

// UpstreamError reports a failed call to the weather API: transport failure,
// timeout, non-200 status, undecodable body or an error envelope in the body.
type UpstreamError struct {
	Endpoint   Endpoint
	StatusCode int
	Code       int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("weather API %s: %v", e.Endpoint, e.Err)
	case e.Code != 0:
		return fmt.Sprintf("weather API %s error: %s (code %d)", e.Endpoint, e.Message, e.Code)
	default:
		return fmt.Sprintf("weather API %s returned status code: %d", e.Endpoint, e.StatusCode)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Rejected reports whether the weather API refused the query itself (unknown
// location, days out of range) rather than failing.
func (e *UpstreamError) Rejected() bool {
	return e.StatusCode == http.StatusBadRequest
}

// Timeout reports whether the call ran out of time, either on the caller's
// context or on the HTTP client's own deadline.
func (e *UpstreamError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
