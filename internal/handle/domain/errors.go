package domain

import (
	"fmt"

	"github.com/clarin-dspace/handle-resolver/internal/errors"
)

// Handle-specific error definitions.
var (
	// ErrHandleNotFound indicates no row exists for the requested handle.
	ErrHandleNotFound = errors.Wrap(errors.ErrNotFound, "handle not found")

	// ErrUIURLNotConfigured indicates a handle has no explicit URL and dspace.ui.url is unset.
	ErrUIURLNotConfigured = errors.Wrap(errors.ErrUnavailable, "dspace.ui.url is not configured")

	// ErrEmptyHandle indicates an empty or missing handle argument.
	ErrEmptyHandle = errors.Wrap(errors.ErrInvalidInput, "handle must not be empty")

	// ErrProtocol matches every *ProtocolError through errors.Is.
	ErrProtocol = errors.New("handle protocol error")
)

// CodeInternalError is the protocol error code returned to the calling handle server.
const CodeInternalError = 1

// ProtocolError is the only error kind that crosses the storage boundary.
// The underlying cause is kept for logging and is deliberately not part of
// the unwrap chain.
type ProtocolError struct {
	Code   int
	Op     string
	Handle string
	cause  error
}

// NewProtocolError builds an internal-error ProtocolError for op.
func NewProtocolError(op, handle string, cause error) *ProtocolError {
	return &ProtocolError{Code: CodeInternalError, Op: op, Handle: handle, cause: cause}
}

func (e *ProtocolError) Error() string {
	if e.Handle == "" {
		return fmt.Sprintf("%s: internal error (code %d)", e.Op, e.Code)
	}
	return fmt.Sprintf("%s %q: internal error (code %d)", e.Op, e.Handle, e.Code)
}

// Is reports true for ErrProtocol.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// Cause returns the local failure that produced the error, if any.
func (e *ProtocolError) Cause() error {
	return e.cause
}
