// SPDX-License-Identifier: MIT

// Package designs builds combinatorial block designs from finite geometry.
//
// What:
//
//   - ProjectiveGeometry(n, d, F): points of PG(n, F) against its d-flats.
//     Enumerates subspaces of F^(n+1); the reference (slow) path.
//   - AffineGeometry(n, d, F): points of AG(n, F) against its d-flats.
//   - DesarguesianPlane(n): PG(2, GF(n)) written down directly from field
//     arithmetic, O(n²) field operations. Use it for planes.
//   - PlaneToOA / OAToPlane: the duality between a projective plane of order
//     n and an orthogonal array OA(n+1, n, 2), obtained by deleting a point
//     and the pencil of lines through it.
//   - PlaneOrderFeasibility(n) / ProjectivePlane(n): what is known about
//     planes of order n (order 10 and Bruck-Ryser-Chowla exclusions) and a
//     constructor gated on that knowledge.
//   - BlockDesign, IsProjectivePlane: thin helpers over package incidence.
//   - ProjectivePlanes(ctx, orders): several planes built concurrently.
//
// Labelling of DesarguesianPlane(n), with rank the gf rank bijection:
//
//	(x, y, 1) -> rank(x) + n·rank(y)
//	(s, 1, 0) -> n² + rank(s)
//	(1, 0, 0) -> n² + n
//
// Options:
//
//   - WithCheck(bool)   validate the result before returning it (default true)
//   - WithPoint(pt)     deleted point for PlaneToOA (default n² + n, i.e.
//     (1:0:0) of DesarguesianPlane; the choice is a convention only)
//   - WithName(name)    display name for BlockDesign
//
// Errors:
//
//   - ErrInvalidFieldOrder    field order is not a prime power
//   - ErrInvalidDimension     geometry dimensions out of range
//   - ErrMalformedPlane       input is not shaped like a projective plane
//   - ErrMalformedOA          input is not an OA(n+1, n, 2)
//   - ErrInvalidPoint         WithPoint names a point the plane lacks
//   - ErrNoSuchDesign         the plane provably does not exist
//   - ErrConstructionUnknown  existence undecided, no construction known
//   - ErrValidationFailed     the built object failed its own check
//
// Every operation is a synchronous pure function; results are immutable.
package designs
