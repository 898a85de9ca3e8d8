package domain

import "errors"

var (
	// ErrInvalidArgument signals a caller-fixable request defect.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals an operation attempted by a non-owner.
	ErrForbidden = errors.New("forbidden")
	// ErrUpstream signals a document store or author lookup failure.
	ErrUpstream = errors.New("upstream failure")
)

// UpstreamError wraps ErrUpstream with the sub-operation that failed,
// so logs can tell a store fetch apart from an author lookup without
// exposing driver detail to clients.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return ErrUpstream.Error() + " in " + e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// NewUpstream creates an upstream failure for the given sub-operation.
func NewUpstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
