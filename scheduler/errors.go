package scheduler

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed or semantically invalid task field.
type ValidationError struct {
	TaskID int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid task %d: %s %s", e.TaskID, e.Field, e.Reason)
}

// UnknownAlgorithmError is returned when no strategy is registered under the given identifier.
type UnknownAlgorithmError struct {
	Algorithm string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown scheduling algorithm: %q", e.Algorithm)
}

// InvalidConfigurationError reports a bad strategy parameter, e.g. a Round-Robin quantum <= 0.
type InvalidConfigurationError struct {
	Param  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Param, e.Reason)
}

// OverExecutionError means a task was granted more CPU time than it had left.
// It indicates an engine bug, never bad input.
type OverExecutionError struct {
	TaskID    int
	Requested int
	Remaining int
}

func (e *OverExecutionError) Error() string {
	return fmt.Sprintf("task %d over-executed: requested %d, remaining %d", e.TaskID, e.Requested, e.Remaining)
}

// InvariantError reports any other internal consistency failure in the simulation.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "scheduler invariant violated: " + e.Msg
}

// IsInputError reports whether err was caused by the caller's input.
func IsInputError(err error) bool {
	var (
		ve *ValidationError
		ue *UnknownAlgorithmError
		ce *InvalidConfigurationError
	)
	return errors.As(err, &ve) || errors.As(err, &ue) || errors.As(err, &ce)
}

// IsInternalError reports whether err signals an engine bug.
func IsInternalError(err error) bool {
	var (
		oe *OverExecutionError
		ie *InvariantError
	)
	return errors.As(err, &oe) || errors.As(err, &ie)
}
