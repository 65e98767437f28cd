// SPDX-License-Identifier: MIT

package gf

import (
	"fmt"

	"github.com/katalvlaran/lvdesign/arith"
)

// Elem is a field element, equal to its rank in 0..q-1 (see package doc).
type Elem int

// Field is GF(q) for q = p^k.
// All operations assume their operands belong to the receiver; feeding an
// element of another field is a programmer error.
type Field struct {
	p, k, q int

	// modulus holds the coefficients c_0..c_{k-1} of the monic modulus
	// x^k + Σ c_i x^i; empty for prime fields.
	modulus []int

	// exp[i] = g^i for i in [0, 2(q-1)); doubled so exp[log a + log b] needs no mod.
	exp []Elem
	// log[a] = i with g^i = a, for a != 0. log[0] is unused.
	log []int
}

// FieldOrOrder is the set of values accepted where a field may be given either
// directly or by its order.
type FieldOrOrder interface {
	int | *Field
}

// Resolve returns f itself for a *Field, or New(f) for an int order.
func Resolve[S FieldOrOrder](s S) (*Field, error) {
	switch v := any(s).(type) {
	case *Field:
		if v == nil {
			return nil, ErrNilField
		}
		return v, nil
	case int:
		return New(v)
	}

	return nil, ErrNilField
}

// New builds GF(q).
// Errors: ErrInvalidFieldOrder when q is not a prime power.
// Complexity: O(q) for the tables, plus the primitive-polynomial scan which
// inspects at most q candidates of O(q) each (in practice a handful).
func New(q int) (*Field, error) {
	p, k, ok := arith.PrimePower(q)
	if !ok {
		return nil, fmt.Errorf("New(%d): %w", q, ErrInvalidFieldOrder)
	}

	f := &Field{p: p, k: k, q: q}
	var g Elem
	if k == 1 {
		g = f.primitiveRoot()
	} else {
		f.modulus = f.primitiveModulus()
		g = Elem(p) // the polynomial x
	}
	f.buildTables(g)

	return f, nil
}

// primitiveRoot returns the smallest generator of (Z/pZ)*.
func (f *Field) primitiveRoot() Elem {
	if f.p == 2 {
		return 1
	}
	for g := 2; g < f.p; g++ {
		if f.order(Elem(g), func(a Elem) Elem { return Elem(int(a) * g % f.p) }) == f.q-1 {
			return Elem(g)
		}
	}

	return 1
}

// primitiveModulus scans monic candidates x^k + m(x) by rank of m and
// returns the first one for which x has multiplicative order q-1.
func (f *Field) primitiveModulus() []int {
	for m := 1; m < f.q; m++ {
		cand := f.digits(m)
		if cand[0] == 0 {
			continue // x divides the candidate
		}
		f.modulus = cand
		if f.order(Elem(f.p), f.mulX) == f.q-1 {
			return cand
		}
	}

	// unreachable: primitive polynomials exist for every degree
	return nil
}

// order returns the multiplicative order of g using step(a) = a·g,
// or 0 when g does not return to one within q-1 steps.
func (f *Field) order(g Elem, step func(Elem) Elem) int {
	cur := g
	for i := 1; i < f.q; i++ {
		if cur == 1 {
			return i
		}
		cur = step(cur)
	}

	return 0
}

// mulX multiplies the polynomial of rank a by x modulo the modulus.
func (f *Field) mulX(a Elem) Elem {
	c := f.digits(int(a))
	top := c[f.k-1]
	for i := f.k - 1; i > 0; i-- {
		c[i] = c[i-1]
	}
	c[0] = 0
	if top != 0 {
		// x^k ≡ -Σ m_i x^i
		for i := 0; i < f.k; i++ {
			c[i] = ((c[i]-top*f.modulus[i])%f.p + f.p) % f.p
		}
	}

	return Elem(f.undigits(c))
}

// buildTables fills exp/log from the generator g.
func (f *Field) buildTables(g Elem) {
	n := f.q - 1
	f.exp = make([]Elem, 2*n)
	f.log = make([]int, f.q)

	step := f.mulX
	if f.k == 1 {
		step = func(a Elem) Elem { return Elem(int(a) * int(g) % f.p) }
	}

	cur := Elem(1)
	for i := 0; i < n; i++ {
		f.exp[i] = cur
		f.log[cur] = i
		cur = step(cur)
	}
	for i := 0; i < n; i++ {
		f.exp[i+n] = f.exp[i]
	}
}

// digits returns the k base-p digits of rank r, least significant first.
func (f *Field) digits(r int) []int {
	c := make([]int, f.k)
	for i := 0; i < f.k; i++ {
		c[i] = r % f.p
		r /= f.p
	}

	return c
}

// undigits is the inverse of digits.
func (f *Field) undigits(c []int) int {
	r := 0
	for i := len(c) - 1; i >= 0; i-- {
		r = r*f.p + c[i]
	}

	return r
}
