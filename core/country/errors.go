package country

import (
	"errors"
	"fmt"
)

// Kind classifies errors produced while loading, querying or exporting.
type Kind string

const (
	// KindStructural aborts a load: the input lacks a required column.
	KindStructural Kind = "structural"
	// KindRowValidation rejects a single row or item; the load continues.
	KindRowValidation Kind = "row_validation"
	// KindNetwork aborts the remote load.
	KindNetwork Kind = "network"
	// KindPayloadShape aborts the remote load: the body is not a JSON array.
	KindPayloadShape Kind = "payload_shape"
	// KindInvalidArgument reports a bad filter field or sort key.
	KindInvalidArgument Kind = "invalid_argument"
	// KindIO reports an export destination that cannot be written.
	KindIO Kind = "io"
)

// NetworkFailure subdivides KindNetwork errors.
type NetworkFailure string

const (
	NetworkTLS        NetworkFailure = "tls"
	NetworkTimeout    NetworkFailure = "timeout"
	NetworkConnection NetworkFailure = "connection"
	NetworkHTTP       NetworkFailure = "http"
)

// Error is the error type returned by every package that handles records.
type Error struct {
	Kind Kind
	// Network is set only for KindNetwork.
	Network NetworkFailure
	// Row is the 1-based row or item number, 0 when not applicable.
	Row int
	// Field is the offending field for validation errors.
	Field string
	// Value is the offending raw value, rendered as text.
	Value   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Row > 0 {
		msg = fmt.Sprintf("row %d: %s", e.Row, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Skippable reports whether the caller should drop the item and continue
// rather than abort the whole operation.
func (e *Error) Skippable() bool {
	return e.Kind == KindRowValidation
}

// KindOf returns the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// NetworkFailureOf returns the network failure class of err, or "".
func NetworkFailureOf(err error) NetworkFailure {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindNetwork {
		return e.Network
	}
	return ""
}

// InvalidArgument builds a KindInvalidArgument error.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}
