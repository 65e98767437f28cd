// SPDX-License-Identifier: MIT
// Package: lvdesign/designs
//
// errors.go: sentinel errors for design constructors.
//
// Contract:
//   • ErrNoSuchDesign means proven nonexistent; ErrConstructionUnknown means open.
//   • ErrValidationFailed signals a constructor bug, never bad input.

package designs

import (
	"errors"

	"github.com/katalvlaran/lvdesign/gf"
)

var (
	// ErrInvalidFieldOrder is gf.ErrInvalidFieldOrder, re-exported so callers
	// of this package need not import gf to branch on it.
	ErrInvalidFieldOrder = gf.ErrInvalidFieldOrder

	// ErrInvalidDimension indicates geometry dimensions outside n ≥ 1, 1 ≤ d ≤ n.
	ErrInvalidDimension = errors.New("designs: invalid geometry dimension")

	// ErrMalformedPlane indicates an input that fails the block-count,
	// block-size or pencil invariants of a projective plane.
	ErrMalformedPlane = errors.New("designs: not a projective plane")

	// ErrMalformedOA indicates an input that is not an OA(n+1, n, 2).
	ErrMalformedOA = errors.New("designs: not an orthogonal array OA(n+1,n,2)")

	// ErrInvalidPoint indicates a WithPoint value that is not a point of the plane.
	ErrInvalidPoint = errors.New("designs: invalid point")

	// ErrNoSuchDesign indicates that the requested design provably does not exist.
	ErrNoSuchDesign = errors.New("designs: no such design exists")

	// ErrConstructionUnknown indicates that existence is undecided and no
	// construction is known.
	ErrConstructionUnknown = errors.New("designs: no construction known")

	// ErrValidationFailed indicates a constructed object that failed its own
	// parameter check. It signals a bug in a constructor, not bad input.
	ErrValidationFailed = errors.New("designs: validation failed")
)
