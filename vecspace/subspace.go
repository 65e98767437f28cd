// SPDX-License-Identifier: MIT

package vecspace

import (
	"fmt"

	"github.com/katalvlaran/lvdesign/arith"
	"github.com/katalvlaran/lvdesign/gf"
)

// Subspace is a linear subspace of a Space, held by its reduced row echelon
// basis. The zero subspace has an empty basis.
type Subspace struct {
	space  *Space
	basis  []Vector // RREF rows; pivot entries are one
	pivots []int    // pivot column of each basis row, increasing
}

// Space returns the ambient space.
func (w *Subspace) Space() *Space { return w.space }

// Dim returns the dimension of w.
func (w *Subspace) Dim() int { return len(w.basis) }

// Basis returns a copy of the reduced row echelon basis.
func (w *Subspace) Basis() []Vector {
	out := make([]Vector, len(w.basis))
	for i, b := range w.basis {
		out[i] = b.Clone()
	}

	return out
}

// Pivots returns the pivot columns of the echelon basis.
func (w *Subspace) Pivots() []int {
	return append([]int(nil), w.pivots...)
}

// reduce returns v minus its component along w's pivots; the result is zero on
// every pivot column and is zero iff v ∈ w.
func (w *Subspace) reduce(v Vector) Vector {
	out := v.Clone()
	for i, c := range w.pivots {
		if out[c] != 0 {
			w.space.axpy(out, out[c], w.basis[i])
		}
	}

	return out
}

// Contains reports whether v lies in w. Vectors of the wrong length are never
// contained.
func (w *Subspace) Contains(v Vector) bool {
	if len(v) != w.space.n {
		return false
	}

	return w.reduce(v).IsZero()
}

// IsSubspace reports whether w ⊆ other. Subspaces of different ambient spaces
// are never nested.
// Complexity: O(dim(w) · dim(other) · n).
func (w *Subspace) IsSubspace(other *Subspace) bool {
	if other == nil || other.space != w.space || w.Dim() > other.Dim() {
		return false
	}
	for _, b := range w.basis {
		if !other.Contains(b) {
			return false
		}
	}

	return true
}

// Equal reports whether w and other are the same subspace.
func (w *Subspace) Equal(other *Subspace) bool {
	return other != nil && w.Dim() == other.Dim() && w.IsSubspace(other)
}

// Elements returns the q^dim vectors of w, ordered by their coefficient
// vectors in the space of the same dimension.
func (w *Subspace) Elements() []Vector {
	s, d := w.space, w.Dim()
	q := s.f.Order()

	count := 1
	for i := 0; i < d; i++ {
		count *= q
	}

	out := make([]Vector, 0, count)
	coeff := make([]gf.Elem, d)
	for i := 0; i < count; i++ {
		// decode i into base-q coefficients, first basis row most significant
		x := i
		for j := d - 1; j >= 0; j-- {
			coeff[j] = gf.Elem(x % q)
			x /= q
		}
		v := make(Vector, s.n)
		for j, c := range coeff {
			if c == 0 {
				continue
			}
			for col, b := range w.basis[j] {
				v[col] = s.f.Add(v[col], s.f.Mul(c, b))
			}
		}
		out = append(out, v)
	}

	return out
}

// String implements fmt.Stringer.
func (w *Subspace) String() string {
	return fmt.Sprintf("Subspace of dimension %d with basis %v", w.Dim(), w.basis)
}

// Subspaces returns every subspace of dimension d, 0 ≤ d ≤ n, in canonical
// order (see package doc).
// Errors: ErrDimension.
// Complexity: proportional to the Gaussian binomial [n choose d]_q.
func (s *Space) Subspaces(d int) ([]*Subspace, error) {
	if d < 0 || d > s.n {
		return nil, fmt.Errorf("Subspaces(%d) of dimension %d: %w", d, s.n, ErrDimension)
	}

	var out []*Subspace
	arith.ForEachCombination(s.n, d, func(pivots []int) bool {
		out = append(out, s.echelonForms(pivots)...)

		return true
	})

	return out, nil
}

// echelonForms returns every RREF basis whose pivot columns are exactly pivots.
func (s *Space) echelonForms(pivots []int) []*Subspace {
	q := s.f.Order()
	isPivot := make([]bool, s.n)
	for _, c := range pivots {
		isPivot[c] = true
	}

	// free slots: (row, col) with col right of the row's pivot and not a pivot
	type slot struct{ row, col int }
	var free []slot
	for r, c := range pivots {
		for col := c + 1; col < s.n; col++ {
			if !isPivot[col] {
				free = append(free, slot{r, col})
			}
		}
	}

	count := 1
	for range free {
		count *= q
	}

	out := make([]*Subspace, 0, count)
	vals := make([]int, len(free))
	for i := 0; i < count; i++ {
		x := i
		for j := len(free) - 1; j >= 0; j-- {
			vals[j] = x % q
			x /= q
		}
		basis := make([]Vector, len(pivots))
		for r, c := range pivots {
			basis[r] = make(Vector, s.n)
			basis[r][c] = 1
		}
		for j, sl := range free {
			basis[sl.row][sl.col] = gf.Elem(vals[j])
		}
		out = append(out, &Subspace{space: s, basis: basis, pivots: append([]int(nil), pivots...)})
	}

	return out
}
