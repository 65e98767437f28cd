// SPDX-License-Identifier: MIT
// Package: lvdesign/designs
//
// feasibility.go: existence oracle for projective planes and ProjectivePlane(n).

package designs

import (
	"fmt"

	"github.com/katalvlaran/lvdesign/arith"
	"github.com/katalvlaran/lvdesign/incidence"
)

// Status classifies what is known about projective planes of a given order.
type Status int

const (
	// Unknown: existence is undecided and no construction is known.
	Unknown Status = iota
	// Exists: a plane exists and DesarguesianPlane builds one.
	Exists
	// KnownNonexistent: no plane of this order exists.
	KnownNonexistent
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Exists:
		return "exists"
	case KnownNonexistent:
		return "known nonexistent"
	default:
		return "unknown"
	}
}

// Feasibility is the verdict of PlaneOrderFeasibility.
type Feasibility struct {
	Order  int
	Status Status
	Reason string
}

const lamThielSwiercz = `C. Lam, L. Thiel and S. Swiercz "The nonexistence of finite projective planes of order 10" (1989), Canad. J. Math.`

// PlaneOrderFeasibility decides what is known about projective planes of
// order n. The rules are applied in order:
//
//  1. n ≤ 1: degenerate, no plane.
//  2. n = 10: no plane (exhaustive computer search, Lam-Thiel-Swiercz 1989).
//  3. n ≡ 1, 2 (mod 4) and n not a sum of two squares: no plane
//     (Bruck-Ryser-Chowla).
//  4. n not a prime power: unknown.
//  5. otherwise the Desarguesian plane exists.
func PlaneOrderFeasibility(n int) Feasibility {
	if n <= 1 {
		return Feasibility{Order: n, Status: KnownNonexistent,
			Reason: "there is no projective plane of order <= 1"}
	}
	if n == 10 {
		return Feasibility{Order: n, Status: KnownNonexistent,
			Reason: "no projective plane of order 10 exists by " + lamThielSwiercz}
	}
	if r := n % 4; r == 1 || r == 2 {
		if _, _, ok := arith.TwoSquares(n); !ok {
			return Feasibility{Order: n, Status: KnownNonexistent,
				Reason: fmt.Sprintf("by the Bruck-Ryser-Chowla theorem, no projective plane of order %d exists", n)}
		}
	}
	if !arith.IsPrimePower(n) {
		return Feasibility{Order: n, Status: Unknown,
			Reason: "if such a projective plane exists, no construction of it is known"}
	}

	return Feasibility{Order: n, Status: Exists,
		Reason: fmt.Sprintf("the Desarguesian plane over GF(%d)", n)}
}

// ProjectivePlane returns a projective plane of order n, the Desarguesian one
// whenever PlaneOrderFeasibility says it exists.
// Errors: ErrNoSuchDesign (wrapped with the reason), ErrConstructionUnknown,
// and anything DesarguesianPlane returns.
func ProjectivePlane(n int, opts ...Option) (*incidence.Structure, error) {
	verdict := PlaneOrderFeasibility(n)
	switch verdict.Status {
	case KnownNonexistent:
		return nil, fmt.Errorf("ProjectivePlane(%d): %s: %w", n, verdict.Reason, ErrNoSuchDesign)
	case Unknown:
		return nil, fmt.Errorf("ProjectivePlane(%d): %s: %w", n, verdict.Reason, ErrConstructionUnknown)
	}

	return DesarguesianPlane(n, opts...)
}
