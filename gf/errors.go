// SPDX-License-Identifier: MIT
// Package: lvdesign/gf
//
// errors.go: sentinel errors for finite-field construction and arithmetic.
//
// Contract:
//   • Arithmetic on valid elements never fails except Inv/Div/Pow/Log at zero.

package gf

import "errors"

var (
	// ErrInvalidFieldOrder indicates a requested order that is not a prime power.
	ErrInvalidFieldOrder = errors.New("gf: the order of a finite field must be a prime power")

	// ErrNotInField indicates a rank or element outside 0..q-1.
	ErrNotInField = errors.New("gf: element not in field")

	// ErrDivisionByZero indicates an inverse of zero was requested.
	ErrDivisionByZero = errors.New("gf: division by zero")

	// ErrNilField indicates a nil *Field where a field was required.
	ErrNilField = errors.New("gf: field is nil")
)
