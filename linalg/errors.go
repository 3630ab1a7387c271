// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular reports an exactly zero pivot during factorization.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrInvalidParameter reports an argument the backend rejected.
	// It signals a caller bug, never a data condition.
	ErrInvalidParameter = errors.New("linalg: invalid parameter")
)

// Status maps an Invert status code to an error. Zero maps to nil.
func Status(code int) error {
	switch {
	case code == 0:
		return nil
	case code < 0:
		return fmt.Errorf("linalg: parameter %d: %w", -code, ErrInvalidParameter)
	default:
		return fmt.Errorf("linalg: pivot %d: %w", code, ErrSingular)
	}
}
