package kuramoto

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the parent of every input validation error.
var ErrInvalidInput = errors.New("kuramoto: invalid input")

// Domain errors for ensemble construction and frame arithmetic.
var (
	// ErrNoOscillators indicates an empty phase table.
	ErrNoOscillators = invalid("no oscillators supplied")

	// ErrLengthMismatch indicates trajectories of differing length.
	ErrLengthMismatch = invalid("trajectories differ in length")

	// ErrEmptyTrajectory indicates trajectories with no timesteps.
	ErrEmptyTrajectory = invalid("trajectories have no timesteps")

	// ErrNonFinite indicates a NaN or Inf phase or frequency.
	ErrNonFinite = invalid("non-finite value (NaN or Inf detected)")

	// ErrFrequencyCount indicates natural frequencies not matching the oscillator count.
	ErrFrequencyCount = invalid("natural frequency count does not match oscillators")

	// ErrStepsPerFrame indicates a frame-skip factor below one.
	ErrStepsPerFrame = invalid("steps per frame must be at least 1")
)

type inputError struct {
	msg string
}

func invalid(msg string) error {
	return &inputError{msg: msg}
}

func (e *inputError) Error() string {
	return "kuramoto: " + e.msg
}

func (e *inputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IndexError wraps a validation error with the offending location.
type IndexError struct {
	Oscillator int
	Timestep   int
	Wrapped    error
}

func (e *IndexError) Error() string {
	if e.Timestep < 0 {
		return fmt.Sprintf("oscillator %d: %v", e.Oscillator, e.Wrapped)
	}
	return fmt.Sprintf("oscillator %d, step %d: %v", e.Oscillator, e.Timestep, e.Wrapped)
}

func (e *IndexError) Unwrap() error {
	return e.Wrapped
}
