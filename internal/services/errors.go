package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured  = errors.New("gemini api key is not configured")
	ErrNoResponseText = errors.New("no response text in first candidate")
)

// UpstreamError carries the status and body of a failed upstream call.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s upstream error (status %d): %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s upstream error (status %d): %s", e.Service, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
