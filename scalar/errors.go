// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
)

// ErrNaN reports a NaN coordinate passed to a checked constructor.
// It is only ever seen wrapped inside a panic value: a NaN at construction
// is a programmer or data error, never a recoverable state.
var ErrNaN = errors.New("scalar: NaN component")

// nanPanicf builds the panic value for a NaN rejected by constructor op.
func nanPanicf(op string, index int) error {
	return fmt.Errorf("%s: component %d: %w", op, index, ErrNaN)
}
