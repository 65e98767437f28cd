// SPDX-License-Identifier: MIT
// Package: lvdesign/incidence
//
// errors.go: sentinel errors for incidence structures and design checks.

package incidence

import "errors"

var (
	// ErrUnknownPoint indicates a block entry that is not one of the points.
	ErrUnknownPoint = errors.New("incidence: unknown point")

	// ErrDuplicatePoint indicates a repeated point label or a block that
	// lists the same point twice.
	ErrDuplicatePoint = errors.New("incidence: duplicate point")

	// ErrNoBlocks indicates a query that needs at least one block.
	ErrNoBlocks = errors.New("incidence: structure has no blocks")

	// ErrInvalidStrength indicates t outside 1..min(k, v).
	ErrInvalidStrength = errors.New("incidence: invalid strength t")

	// ErrBlockIndex indicates a block index outside 0..b-1.
	ErrBlockIndex = errors.New("incidence: block index out of range")

	// ErrNonBinary indicates an incidence matrix entry other than 0 or 1.
	ErrNonBinary = errors.New("incidence: non-binary incidence entry")

	// ErrRaggedMatrix indicates incidence matrix rows of differing length.
	ErrRaggedMatrix = errors.New("incidence: ragged incidence matrix")
)
