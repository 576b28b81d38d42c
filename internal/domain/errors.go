package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrExecution          = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInvalidConfig      ErrorKind = "invalid_config"
	KindDegenerateGeometry ErrorKind = "degenerate_geometry"
	KindExecution          ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidConfig builds a configuration error for a named field.
func InvalidConfig(op, field, msg string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig),
	}
}

// WarningKind classifies non-fatal findings attached to derived geometry.
type WarningKind string

const (
	WarningOutOfBounds WarningKind = "out_of_bounds"
)

// GeometryWarning reports geometry that had to be adjusted to stay inside the
// wing outline. Rendering proceeds with the Clamped value.
type GeometryWarning struct {
	Kind    WarningKind `json:"kind"`
	Field   string      `json:"field"`
	Value   float64     `json:"value"`
	Clamped float64     `json:"clamped"`
	Message string      `json:"message"`
}

func (w GeometryWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}
