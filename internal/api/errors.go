package api

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested record does not exist. For journal
// dates this is an expected outcome, not a failure.
var ErrNotFound = errors.New("not found")

// StatusError is a non-2xx response from the server.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// OpError wraps a transport or decode failure with the operation that hit it.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	var se *StatusError
	if errors.As(err, &se) {
		return err
	}
	return &OpError{Op: op, Err: err}
}
