package exception

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrAllProtocolsExhausted returned by the protocol manager when no
// registered protocol could complete an update
var ErrAllProtocolsExhausted = errors.New("all protocols exhausted")

// ErrUnsupportedMode returned when a request names an update mode the
// selected protocol cannot execute
var ErrUnsupportedMode = errors.New("unsupported update mode")

// ErrQueueNotAvailable returned when the controller job queue is busy or
// holds failed jobs and an update cannot be issued
var ErrQueueNotAvailable = errors.New("controller job queue not available")

// Kind classifies a failure for retry and fallback decisions
type Kind string

const (
	// KindPermanent never retried: malformed request, missing fields,
	// unsupported mode
	KindPermanent Kind = "permanent"
	// KindTransient retried with delay, then fallen back to the next
	// protocol: timeouts, temporary unavailability
	KindTransient Kind = "transient"
	// KindAuth not retried with the same credentials
	KindAuth Kind = "authentication"
	// KindCritical always surfaced to the caller, never swallowed
	KindCritical Kind = "critical"
)

// Error is our typed protocol error carrying the classification that
// drives retry and fallback behavior
type Error struct {
	Kind       Kind
	Protocol   string
	Op         string
	Diagnostic string
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s (%s)", e.Protocol, e.Op, e.Kind)
	}

	return fmt.Sprintf("%s: %s: %s (%s)", e.Protocol, e.Op, e.Err.Error(), e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Permanent wraps err as a non-retryable failure
func Permanent(protocol, op string, err error) *Error {
	return &Error{Kind: KindPermanent, Protocol: protocol, Op: op, Err: err}
}

// Transient wraps err as a retryable failure
func Transient(protocol, op string, err error) *Error {
	return &Error{Kind: KindTransient, Protocol: protocol, Op: op, Err: err}
}

// Auth wraps err as a credential rejection
func Auth(protocol, op string, err error) *Error {
	return &Error{Kind: KindAuth, Protocol: protocol, Op: op, Err: err}
}

// Critical wraps err as an unrecoverable failure
func Critical(protocol, op string, err error) *Error {
	return &Error{Kind: KindCritical, Protocol: protocol, Op: op, Err: err}
}

// KindOf returns the classification of err. Errors that carry no
// classification are treated as transient so fallback stays alive.
func KindOf(err error) Kind {
	var typed *Error

	if errors.As(err, &typed) {
		return typed.Kind
	}

	return KindTransient
}

// Retryable reports whether the same protocol should be retried for err
func Retryable(err error) bool {
	return KindOf(err) == KindTransient
}
