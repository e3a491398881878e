package rain

import (
	"errors"
	"fmt"
)

// ErrSetup is matched by every error returned from Start.
var ErrSetup = errors.New("rain: setup failed")

// SetupError describes why a session could not be started.
// No timer is registered and no droplets exist when it is returned.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("rain: setup failed: %s: %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() []error {
	return []error{ErrSetup, e.Err}
}

// NewSetupError wraps err as a setup failure of op.
// Surface constructors use it so hosts see a single error kind.
func NewSetupError(op string, err error) error {
	return &SetupError{Op: op, Err: err}
}
