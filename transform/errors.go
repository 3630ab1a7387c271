// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned by checked construction when the matrix has
	// no inverse.
	ErrSingular = errors.New("transform: singular matrix")

	// ErrDegenerateBasis is returned by LookAt when eye == target or up is
	// parallel to the viewing direction.
	ErrDegenerateBasis = errors.New("transform: degenerate basis")

	// ErrInvalidProjection is returned by Perspective for a field of view
	// outside (0°, 180°) or clip planes that do not satisfy 0 < near < far.
	ErrInvalidProjection = errors.New("transform: invalid projection")

	// ErrInconsistentPair reports a forward/inverse pair whose product is
	// not the identity.
	ErrInconsistentPair = errors.New("transform: inconsistent matrix pair")
)

const (
	opNew         = "New"
	opFromPair    = "FromPair"
	opLookAt      = "LookAt"
	opPerspective = "Perspective"
	opVerify      = "Verify"
)

func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
