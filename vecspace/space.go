// SPDX-License-Identifier: MIT

package vecspace

import (
	"fmt"

	"github.com/katalvlaran/lvdesign/arith"
	"github.com/katalvlaran/lvdesign/gf"
)

// Vector is an element of F^n.
type Vector []gf.Elem

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// IsZero reports whether every coordinate is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// Space is F^n for a finite field F.
type Space struct {
	f    *gf.Field
	n    int
	size int // q^n
}

// New returns the vector space of dimension n ≥ 1 over f.
// Errors: gf.ErrNilField, ErrDimension, arith.ErrOverflow when q^n does not fit.
func New(f *gf.Field, n int) (*Space, error) {
	if f == nil {
		return nil, fmt.Errorf("vecspace.New: %w", gf.ErrNilField)
	}
	if n < 1 {
		return nil, fmt.Errorf("vecspace.New(n=%d): %w", n, ErrDimension)
	}
	size, err := arith.Pow(f.Order(), n)
	if err != nil {
		return nil, fmt.Errorf("vecspace.New(q=%d, n=%d): %w", f.Order(), n, err)
	}

	return &Space{f: f, n: n, size: size}, nil
}

// Field returns the base field.
func (s *Space) Field() *gf.Field { return s.f }

// Dim returns n.
func (s *Space) Dim() int { return s.n }

// Size returns q^n, the number of vectors.
func (s *Space) Size() int { return s.size }

// String implements fmt.Stringer.
func (s *Space) String() string {
	return fmt.Sprintf("Vector space of dimension %d over %s", s.n, s.f)
}

// Vector returns the vector with index i.
// Errors: ErrIndex for i outside 0..q^n-1.
func (s *Space) Vector(i int) (Vector, error) {
	if i < 0 || i >= s.size {
		return nil, fmt.Errorf("Vector(%d): %w", i, ErrIndex)
	}

	return s.vectorAt(i), nil
}

func (s *Space) vectorAt(i int) Vector {
	q := s.f.Order()
	v := make(Vector, s.n)
	for j := s.n - 1; j >= 0; j-- {
		v[j] = gf.Elem(i % q)
		i /= q
	}

	return v
}

// Index returns the index of v in the enumeration order.
// Errors: ErrLength, gf.ErrNotInField.
func (s *Space) Index(v Vector) (int, error) {
	if len(v) != s.n {
		return 0, fmt.Errorf("Index: len %d, want %d: %w", len(v), s.n, ErrLength)
	}
	q, idx := s.f.Order(), 0
	for _, x := range v {
		if !s.f.Contains(x) {
			return 0, fmt.Errorf("Index: coordinate %d: %w", x, gf.ErrNotInField)
		}
		idx = idx*q + s.f.Rank(x)
	}

	return idx, nil
}

// index is Index for vectors already known to belong to s.
func (s *Space) index(v Vector) int {
	q, idx := s.f.Order(), 0
	for _, x := range v {
		idx = idx*q + int(x)
	}

	return idx
}

// Vectors returns all q^n vectors in ascending index.
// Complexity: O(q^n · n) time and space.
func (s *Space) Vectors() []Vector {
	out := make([]Vector, s.size)
	for i := range out {
		out[i] = s.vectorAt(i)
	}

	return out
}

// Add returns a + b.
func (s *Space) Add(a, b Vector) Vector {
	out := make(Vector, s.n)
	for i := range out {
		out[i] = s.f.Add(a[i], b[i])
	}

	return out
}

// Sub returns a - b.
func (s *Space) Sub(a, b Vector) Vector {
	out := make(Vector, s.n)
	for i := range out {
		out[i] = s.f.Sub(a[i], b[i])
	}

	return out
}

// Scale returns c·v.
func (s *Space) Scale(c gf.Elem, v Vector) Vector {
	out := make(Vector, s.n)
	for i := range out {
		out[i] = s.f.Mul(c, v[i])
	}

	return out
}

// axpy sets dst = dst - c·row in place.
func (s *Space) axpy(dst Vector, c gf.Elem, row Vector) {
	for i := range dst {
		if row[i] != 0 {
			dst[i] = s.f.Sub(dst[i], s.f.Mul(c, row[i]))
		}
	}
}

// Span returns the subspace spanned by vs (zero vectors allowed).
// Errors: ErrLength, gf.ErrNotInField.
// Complexity: O(m·n·min(m,n)) for m input vectors.
func (s *Space) Span(vs ...Vector) (*Subspace, error) {
	rows := make([]Vector, 0, len(vs))
	for _, v := range vs {
		if _, err := s.Index(v); err != nil {
			return nil, fmt.Errorf("Span: %w", err)
		}
		rows = append(rows, v.Clone())
	}

	return s.rref(rows), nil
}

// rref runs Gauss-Jordan elimination on rows (modified in place) and wraps
// the non-zero result as a Subspace.
func (s *Space) rref(rows []Vector) *Subspace {
	var pivots []int
	r := 0
	for c := 0; c < s.n && r < len(rows); c++ {
		// find a pivot in column c at or below r
		p := -1
		for i := r; i < len(rows); i++ {
			if rows[i][c] != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		rows[r], rows[p] = rows[p], rows[r]

		// normalize the pivot to one
		inv, _ := s.f.Inv(rows[r][c]) // non-zero by construction
		rows[r] = s.Scale(inv, rows[r])

		// clear column c everywhere else
		for i := range rows {
			if i != r && rows[i][c] != 0 {
				s.axpy(rows[i], rows[i][c], rows[r])
			}
		}
		pivots = append(pivots, c)
		r++
	}

	return &Subspace{space: s, basis: rows[:r], pivots: pivots}
}
