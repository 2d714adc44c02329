package anim

import "fmt"

// ConfigError reports an invalid construction parameter, such as a
// zero-width interpolation window or a non-positive loop period. It is
// returned when the faulty value is supplied, before any rendering starts.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "anim: invalid configuration: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// RenderError wraps an error raised while computing or exporting a single
// frame, recording which frame and animation time it belongs to.
type RenderError struct {
	Frame int
	Time  float64
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("anim: frame %d (t=%g): %v", e.Frame, e.Time, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
