package sugar

import (
	"errors"
	"fmt"
)

// Sentinel errors for package sugar.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Dispatch errors
	ErrUnknownMethod    = errors.New("unknown method")
	ErrNoImplementation = errors.New("no implementation configured")

	// Implementation errors
	ErrImplementationPanic = errors.New("implementation panicked")
)

// ExternalOperationError is the only failure a façade call produces. It names
// the method that failed and wraps whatever the implementation returned.
type ExternalOperationError struct {
	Method Method
	Err    error
}

func (e *ExternalOperationError) Error() string {
	return fmt.Sprintf("sugar %s: %v", e.Method, e.Err)
}

func (e *ExternalOperationError) Unwrap() error {
	return e.Err
}

// wrapExternal returns err as an *ExternalOperationError for method. An error
// that already is one is returned unchanged.
func wrapExternal(method Method, err error) error {
	if err == nil {
		return nil
	}
	var opErr *ExternalOperationError
	if errors.As(err, &opErr) {
		return err
	}
	return &ExternalOperationError{Method: method, Err: err}
}
