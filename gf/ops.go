// SPDX-License-Identifier: MIT

package gf

import "fmt"

// Order returns q.
func (f *Field) Order() int { return f.q }

// Characteristic returns p.
func (f *Field) Characteristic() int { return f.p }

// Degree returns k, the degree of GF(q) over its prime field.
func (f *Field) Degree() int { return f.k }

// Modulus returns the coefficients c_0..c_k of the monic modulus polynomial
// (c_k = 1). For prime fields it returns [0, 1], i.e. the polynomial x.
func (f *Field) Modulus() []int {
	if f.k == 1 {
		return []int{0, 1}
	}
	out := make([]int, f.k+1)
	copy(out, f.modulus)
	out[f.k] = 1

	return out
}

// String implements fmt.Stringer.
func (f *Field) String() string {
	return fmt.Sprintf("Finite Field of size %d", f.q)
}

// Zero returns the additive identity.
func (f *Field) Zero() Elem { return 0 }

// One returns the multiplicative identity.
func (f *Field) One() Elem { return 1 }

// Generator returns the primitive element the tables are built from.
func (f *Field) Generator() Elem {
	if f.q == 2 {
		return 1
	}

	return f.exp[1]
}

// Elements returns every element in ascending rank order.
// Complexity: O(q).
func (f *Field) Elements() []Elem {
	out := make([]Elem, f.q)
	for i := range out {
		out[i] = Elem(i)
	}

	return out
}

// Contains reports whether e is an element of f.
func (f *Field) Contains(e Elem) bool { return e >= 0 && int(e) < f.q }

// Rank returns the rank of e, the index used by every relabelling in this
// module. It is the identity on valid elements.
func (f *Field) Rank(e Elem) int { return int(e) }

// FromRank returns the element of rank r.
// Errors: ErrNotInField when r is outside 0..q-1.
func (f *Field) FromRank(r int) (Elem, error) {
	if r < 0 || r >= f.q {
		return 0, fmt.Errorf("FromRank(%d) in GF(%d): %w", r, f.q, ErrNotInField)
	}

	return Elem(r), nil
}

// Add returns a + b.
func (f *Field) Add(a, b Elem) Elem {
	switch {
	case f.k == 1:
		return Elem((int(a) + int(b)) % f.p)
	case f.p == 2:
		return a ^ b
	}

	// digit-wise addition mod p
	r, x, y, place := 0, int(a), int(b), 1
	for i := 0; i < f.k; i++ {
		r += ((x%f.p + y%f.p) % f.p) * place
		x /= f.p
		y /= f.p
		place *= f.p
	}

	return Elem(r)
}

// Neg returns -a.
func (f *Field) Neg(a Elem) Elem {
	switch {
	case f.k == 1:
		return Elem((f.p - int(a)) % f.p)
	case f.p == 2:
		return a
	}

	r, x, place := 0, int(a), 1
	for i := 0; i < f.k; i++ {
		r += ((f.p - x%f.p) % f.p) * place
		x /= f.p
		place *= f.p
	}

	return Elem(r)
}

// Sub returns a - b.
func (f *Field) Sub(a, b Elem) Elem { return f.Add(a, f.Neg(b)) }

// Mul returns a · b in O(1) via the log tables.
func (f *Field) Mul(a, b Elem) Elem {
	if a == 0 || b == 0 {
		return 0
	}

	return f.exp[f.log[a]+f.log[b]]
}

// Inv returns a⁻¹.
// Errors: ErrDivisionByZero for a = 0.
func (f *Field) Inv(a Elem) (Elem, error) {
	if a == 0 {
		return 0, fmt.Errorf("Inv in GF(%d): %w", f.q, ErrDivisionByZero)
	}
	n := f.q - 1

	return f.exp[(n-f.log[a])%n], nil
}

// Div returns a / b.
// Errors: ErrDivisionByZero for b = 0.
func (f *Field) Div(a, b Elem) (Elem, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}

	return f.Mul(a, inv), nil
}

// Pow returns a^n; negative n uses the inverse.
// Errors: ErrDivisionByZero for a = 0 and n < 0.
func (f *Field) Pow(a Elem, n int) (Elem, error) {
	switch {
	case n == 0:
		return 1, nil
	case a == 0 && n < 0:
		return 0, fmt.Errorf("Pow(0, %d) in GF(%d): %w", n, f.q, ErrDivisionByZero)
	case a == 0:
		return 0, nil
	}
	m := f.q - 1
	e := (f.log[a] * (n % m)) % m
	if e < 0 {
		e += m
	}

	return f.exp[e], nil
}

// Log returns the discrete logarithm of a to the base Generator().
// Errors: ErrDivisionByZero for a = 0 (log 0 is undefined).
func (f *Field) Log(a Elem) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("Log(0) in GF(%d): %w", f.q, ErrDivisionByZero)
	}

	return f.log[a], nil
}
