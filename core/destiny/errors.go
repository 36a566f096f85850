package destiny

import (
	"errors"
	"fmt"
)

// ErrRemoteUnavailable indicates the remote content API could not supply a
// descriptor, component or account snapshot.
var ErrRemoteUnavailable = errors.New("remote content unavailable")

// RemoteError wraps a failed call against the remote content API.
type RemoteError struct {
	// Op names the failed operation (e.g. "fetch manifest descriptor").
	Op string
	// Err is the underlying transport or API error.
	Err error
}

// NewRemoteError wraps err as a RemoteError for the given operation.
func NewRemoteError(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrRemoteUnavailable, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrRemoteUnavailable so callers need not know the concrete type.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}
