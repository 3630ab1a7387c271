// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a row or column index outside [0, 4).
// At and Set return it; Swap panics with it.
var ErrOutOfRange = errors.New("matrix: index out of range")

// Operation tags used when wrapping errors.
const (
	opAt      = "At"
	opSet     = "Set"
	opSwap    = "Swap"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexError reports the offending (i, j) pair.
func indexError(tag string, i, j int) error {
	return matrixErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
}
