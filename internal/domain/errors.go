package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrStorage        = errors.New("storage failure")
)

// ServerRejectedError is returned when the remote API answered with a failure, either a
// non-2xx status or an envelope whose status code is not success.
type ServerRejectedError struct {
	StatusCode int
	Message    string
}

func (e *ServerRejectedError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("server rejected request (code %d): %s", e.StatusCode, e.Message)
	}
	return "server rejected request: " + e.Message
}

// DecodeError keeps the JSON field path that failed to decode.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode response: %v", e.Err)
	}
	return fmt.Sprintf("decode response at %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
