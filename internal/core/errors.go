package core

import (
	"errors"
	"fmt"
)

// ErrExtractionParse marks a provider response that could not be decoded into
// a parameter object. It is recovered locally and never reaches the user.
var ErrExtractionParse = errors.New("extraction response is not a parameter object")

// DispatchHTTPError is returned when the build server answered with a status
// other than 200 or 201.
type DispatchHTTPError struct {
	StatusCode int
	Body       string
}

func (e *DispatchHTTPError) Error() string {
	return fmt.Sprintf("build server responded with status %d: %s", e.StatusCode, e.Body)
}

// DispatchTransportError is returned when the trigger request did not complete.
type DispatchTransportError struct {
	URL string
	Err error
}

func (e *DispatchTransportError) Error() string {
	return fmt.Sprintf("trigger request to %s failed: %v", e.URL, e.Err)
}

func (e *DispatchTransportError) Unwrap() error {
	return e.Err
}
