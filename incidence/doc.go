// SPDX-License-Identifier: MIT

// Package incidence stores finite incidence structures (points and blocks)
// and answers the design-theoretic questions asked about them: the
// parameters of a t-design, whether given parameters hold exactly, and the
// largest strength for which the structure is a block design.
//
// Storage convention:
//
//   - Points are integer labels, stored in ascending order.
//   - Each block is stored sorted ascending; the block list is stored sorted
//     lexicographically. Construction order therefore never leaks into the
//     result, and two structures with the same point/block sets compare Equal.
//
// A Structure is immutable: every accessor returns a copy, and the queries
// (Parameters, IsTDesign, IsBlockDesign, IncidenceMatrix, Dual) never mutate
// the receiver. It is safe for concurrent readers.
//
// Errors:
//
//   - ErrUnknownPoint     block references a label that is not a point
//   - ErrDuplicatePoint   repeated point label, or a block repeats a point
//   - ErrNoBlocks         query needs at least one block
//   - ErrInvalidStrength  t outside 1..min(k, v)
//   - ErrBlockIndex       block index out of range
//   - ErrNonBinary        incidence matrix entry other than 0/1
//   - ErrRaggedMatrix     incidence matrix rows of differing length
//
// Complexity:
//
//   - New: O(Σ|B| log |B| + b log b · k).
//   - IsTDesign(t, ...): O(b · C(k, t) · t) plus the exact count precheck.
//   - IsBlockDesign: IsTDesign for t = 1, 2, … until the first failure.
package incidence
