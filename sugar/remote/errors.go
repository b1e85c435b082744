package remote

import (
	"errors"
	"fmt"

	"github.com/dendrascience/sugarctl/sugar"
)

var (
	ErrInvalidArgs   = errors.New("invalid arguments")
	ErrMissingAction = errors.New("missing required field: action")
)

// CallError is returned by Client when the server settles a call with
// ok=false. Message is the server's error text.
type CallError struct {
	Method  sugar.Method
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("remote %s: %s", e.Method, e.Message)
}
