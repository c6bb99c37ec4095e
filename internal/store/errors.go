package store

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks a malformed slice registration. It is raised once, by
	// Combine or New, never per dispatch.
	ErrConfig = errors.New("invalid slice configuration")
	// ErrContractViolation marks a slice reducer that returned no state.
	ErrContractViolation = errors.New("slice reducer contract violation")
	// ErrForeignState marks a prior state whose keys do not match the
	// registered slices.
	ErrForeignState = errors.New("state does not match registered slices")
	// ErrInvalidAction marks a nil action.
	ErrInvalidAction = errors.New("action is nil")
	// ErrDispatchInProgress is returned when a dispatch arrives while another
	// one is still being reduced.
	ErrDispatchInProgress = errors.New("dispatch already in progress")
)

// ConfigError reports which registration was rejected and why.
type ConfigError struct {
	Slice  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Slice == "" {
		return fmt.Sprintf("%s: %s", ErrConfig, e.Reason)
	}
	return fmt.Sprintf("%s: slice %q: %s", ErrConfig, e.Slice, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// ContractViolationError reports the slice and action that produced an
// invalid state.
type ContractViolationError struct {
	Slice  string
	Action ActionType
	Reason string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("%s: slice %q on %s: %s", ErrContractViolation, e.Slice, e.Action, e.Reason)
}

func (e *ContractViolationError) Unwrap() error { return ErrContractViolation }
