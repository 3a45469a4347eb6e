package render

import (
	"errors"
	"fmt"

	"github.com/san-kum/kuramoto/internal/kuramoto"
)

var (
	// ErrNoFrames indicates trajectories shorter than one frame.
	ErrNoFrames = fmt.Errorf("%w: trajectories shorter than one frame", kuramoto.ErrInvalidInput)

	// ErrUnsupportedFormat indicates an output extension with no encoder.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported output format", kuramoto.ErrInvalidInput)

	// ErrBadOptions indicates a render option outside its valid range.
	ErrBadOptions = fmt.Errorf("%w: render option out of range", kuramoto.ErrInvalidInput)

	// ErrIO is matched by every output write failure.
	ErrIO = errors.New("render: output write failed")
)

// ExportError wraps an I/O failure with the path being written.
type ExportError struct {
	Path    string
	Wrapped error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("render: write %s: %v", e.Path, e.Wrapped)
}

func (e *ExportError) Unwrap() error {
	return e.Wrapped
}

func (e *ExportError) Is(target error) bool {
	return target == ErrIO
}
