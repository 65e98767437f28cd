// SPDX-License-Identifier: MIT
// Package: lvdesign/vecspace
//
// errors.go: sentinel errors for vector spaces and subspaces.

package vecspace

import "errors"

var (
	// ErrDimension indicates a dimension outside the allowed range.
	ErrDimension = errors.New("vecspace: invalid dimension")

	// ErrLength indicates a vector whose length differs from the space dimension.
	ErrLength = errors.New("vecspace: vector length mismatch")

	// ErrIndex indicates a vector index outside 0..q^n-1.
	ErrIndex = errors.New("vecspace: vector index out of range")
)
