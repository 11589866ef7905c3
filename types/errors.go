package types

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the single error kind produced while decoding a
// connection descriptor. All parse failures wrap it, so callers can test
// with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigErrorf builds an invalid-configuration error with a descriptive
// message naming the offending key or value.
func ConfigErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
