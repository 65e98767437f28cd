// SPDX-License-Identifier: MIT

package vecspace

import "fmt"

// Coset is the affine flat offset + W. The offset is the canonical
// representative: the unique member of the coset that vanishes on every
// pivot column of W.
type Coset struct {
	dir    *Subspace
	offset Vector
}

// Coset returns the affine flat v + w.
// Errors: ErrLength, gf.ErrNotInField.
func (w *Subspace) Coset(v Vector) (*Coset, error) {
	if _, err := w.space.Index(v); err != nil {
		return nil, fmt.Errorf("Coset: %w", err)
	}

	return &Coset{dir: w, offset: w.reduce(v)}, nil
}

// Direction returns the subspace W.
func (c *Coset) Direction() *Subspace { return c.dir }

// Offset returns a copy of the canonical representative.
func (c *Coset) Offset() Vector { return c.offset.Clone() }

// Dim returns the affine dimension, dim W.
func (c *Coset) Dim() int { return c.dir.Dim() }

// Contains reports whether v lies in the coset.
func (c *Coset) Contains(v Vector) bool {
	if len(v) != c.dir.space.n {
		return false
	}

	return c.dir.Contains(c.dir.space.Sub(v, c.offset))
}

// Equal reports whether c and other are the same affine flat.
func (c *Coset) Equal(other *Coset) bool {
	return other != nil && c.dir.Equal(other.dir) && c.Contains(other.offset)
}

// Elements returns the q^dim vectors of the coset, offset + w for w in
// Direction().Elements() order.
func (c *Coset) Elements() []Vector {
	ws := c.dir.Elements()
	out := make([]Vector, len(ws))
	for i, w := range ws {
		out[i] = c.dir.space.Add(c.offset, w)
	}

	return out
}

// String implements fmt.Stringer.
func (c *Coset) String() string {
	return fmt.Sprintf("%v + %v", c.offset, c.dir)
}

// AffineFlats returns every d-dimensional affine flat of the space, 0 ≤ d ≤ n:
// for each subspace W of Subspaces(d), the q^(n-d) cosets x + W with x taken
// over canonical representatives in ascending vector index.
// Errors: ErrDimension.
// Complexity: O([n choose d]_q · q^n · n).
func (s *Space) AffineFlats(d int) ([]*Coset, error) {
	dirs, err := s.Subspaces(d)
	if err != nil {
		return nil, fmt.Errorf("AffineFlats: %w", err)
	}

	var out []*Coset
	for _, w := range dirs {
		for i := 0; i < s.size; i++ {
			v := s.vectorAt(i)
			if !vanishesOn(v, w.pivots) {
				continue
			}
			out = append(out, &Coset{dir: w, offset: v})
		}
	}

	return out, nil
}

// vanishesOn reports whether v is zero on every listed column.
func vanishesOn(v Vector, cols []int) bool {
	for _, c := range cols {
		if v[c] != 0 {
			return false
		}
	}

	return true
}
