// SPDX-License-Identifier: MIT
// Package: lvdesign/arith
//
// errors.go: sentinel errors for integer arithmetic.
//
// Contract:
//   • Every error returned by arith wraps one of these; branch with errors.Is.

package arith

import "errors"

var (
	// ErrOverflow indicates an exact result that does not fit in a machine int.
	ErrOverflow = errors.New("arith: integer overflow")

	// ErrNegativeExponent is returned by Pow for exp < 0.
	ErrNegativeExponent = errors.New("arith: negative exponent")
)
