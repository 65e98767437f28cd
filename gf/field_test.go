// SPDX-License-Identifier: MIT
package gf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvdesign/gf"
)

var fieldOrders = []int{2, 3, 4, 5, 7, 8, 9, 11, 16, 25, 27, 32, 49, 64, 81, 125}

func TestNew_InvalidOrders(t *testing.T) {
	for _, q := range []int{-3, 0, 1, 6, 10, 12, 15, 100} {
		f, err := gf.New(q)
		assert.Nil(t, f)
		assert.ErrorIs(t, err, gf.ErrInvalidFieldOrder, "q=%d", q)
	}
}

func TestNew_Shape(t *testing.T) {
	f, err := gf.New(9)
	require.NoError(t, err)
	assert.Equal(t, 9, f.Order())
	assert.Equal(t, 3, f.Characteristic())
	assert.Equal(t, 2, f.Degree())
	assert.Equal(t, "Finite Field of size 9", f.String())
	// x^2 + x + 2 is the first primitive quadratic over GF(3)
	assert.Equal(t, []int{2, 1, 1}, f.Modulus())

	f4, err := gf.New(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, f4.Modulus())

	f8, err := gf.New(8)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 1}, f8.Modulus())

	f7, err := gf.New(7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, f7.Modulus())
	assert.Equal(t, gf.Elem(3), f7.Generator())
}

func TestElements_RankOrder(t *testing.T) {
	f, err := gf.New(8)
	require.NoError(t, err)
	els := f.Elements()
	require.Len(t, els, 8)
	for i, e := range els {
		assert.Equal(t, i, f.Rank(e))
		got, err := f.FromRank(i)
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
	_, err = f.FromRank(8)
	assert.ErrorIs(t, err, gf.ErrNotInField)
	assert.False(t, f.Contains(-1))
	assert.True(t, f.Contains(7))
}

func TestPrimeField_MatchesModularArithmetic(t *testing.T) {
	f, err := gf.New(13)
	require.NoError(t, err)
	for a := 0; a < 13; a++ {
		for b := 0; b < 13; b++ {
			assert.Equal(t, gf.Elem((a+b)%13), f.Add(gf.Elem(a), gf.Elem(b)))
			assert.Equal(t, gf.Elem((a*b)%13), f.Mul(gf.Elem(a), gf.Elem(b)))
		}
	}
}

func TestGF4_Tables(t *testing.T) {
	// GF(4) = GF(2)[x]/(x^2+x+1); ranks: 0, 1, x=2, x+1=3
	f, err := gf.New(4)
	require.NoError(t, err)
	assert.Equal(t, gf.Elem(1), f.Add(2, 3))
	assert.Equal(t, gf.Elem(3), f.Mul(2, 2)) // x·x = x+1
	assert.Equal(t, gf.Elem(1), f.Mul(2, 3)) // x(x+1) = x^2+x = 1
	inv, err := f.Inv(2)
	require.NoError(t, err)
	assert.Equal(t, gf.Elem(3), inv)
}

func TestDivisionByZero(t *testing.T) {
	f, err := gf.New(5)
	require.NoError(t, err)
	_, err = f.Inv(0)
	assert.ErrorIs(t, err, gf.ErrDivisionByZero)
	_, err = f.Div(3, 0)
	assert.ErrorIs(t, err, gf.ErrDivisionByZero)
	_, err = f.Pow(0, -2)
	assert.ErrorIs(t, err, gf.ErrDivisionByZero)
	_, err = f.Log(0)
	assert.ErrorIs(t, err, gf.ErrDivisionByZero)

	z, err := f.Pow(0, 3)
	require.NoError(t, err)
	assert.Equal(t, gf.Elem(0), z)
}

func TestResolve(t *testing.T) {
	f, err := gf.Resolve(16)
	require.NoError(t, err)
	assert.Equal(t, 16, f.Order())

	same, err := gf.Resolve(f)
	require.NoError(t, err)
	assert.Same(t, f, same)

	_, err = gf.Resolve(12)
	assert.ErrorIs(t, err, gf.ErrInvalidFieldOrder)

	var nilField *gf.Field
	_, err = gf.Resolve(nilField)
	assert.ErrorIs(t, err, gf.ErrNilField)
}

func TestGenerator_HasFullOrder(t *testing.T) {
	for _, q := range fieldOrders {
		f, err := gf.New(q)
		require.NoError(t, err)
		seen := make(map[gf.Elem]bool, q-1)
		for i := 0; i < q-1; i++ {
			x, err := f.Pow(f.Generator(), i)
			require.NoError(t, err)
			seen[x] = true
		}
		assert.Len(t, seen, q-1, "q=%d", q)
	}
}

// TestField_Axioms_Property checks the field axioms on random triples drawn
// from random fields.
func TestField_Axioms_Property(t *testing.T) {
	fields := make(map[int]*gf.Field, len(fieldOrders))
	for _, q := range fieldOrders {
		f, err := gf.New(q)
		require.NoError(t, err)
		fields[q] = f
	}

	rapid.Check(t, func(t *rapid.T) {
		q := rapid.SampledFrom(fieldOrders).Draw(t, "q")
		f := fields[q]
		el := rapid.Custom(func(t *rapid.T) gf.Elem {
			return gf.Elem(rapid.IntRange(0, q-1).Draw(t, "rank"))
		})
		a, b, c := el.Draw(t, "a"), el.Draw(t, "b"), el.Draw(t, "c")

		if f.Add(a, b) != f.Add(b, a) || f.Mul(a, b) != f.Mul(b, a) {
			t.Fatalf("commutativity fails for %d, %d in GF(%d)", a, b, q)
		}
		if f.Add(f.Add(a, b), c) != f.Add(a, f.Add(b, c)) {
			t.Fatalf("additive associativity fails in GF(%d)", q)
		}
		if f.Mul(f.Mul(a, b), c) != f.Mul(a, f.Mul(b, c)) {
			t.Fatalf("multiplicative associativity fails in GF(%d)", q)
		}
		if f.Mul(a, f.Add(b, c)) != f.Add(f.Mul(a, b), f.Mul(a, c)) {
			t.Fatalf("distributivity fails in GF(%d)", q)
		}
		if f.Add(a, f.Neg(a)) != f.Zero() || f.Sub(a, a) != f.Zero() {
			t.Fatalf("negation fails for %d in GF(%d)", a, q)
		}
		if f.Mul(a, f.One()) != a || f.Add(a, f.Zero()) != a {
			t.Fatalf("identities fail for %d in GF(%d)", a, q)
		}
		if a != 0 {
			inv, err := f.Inv(a)
			if err != nil || f.Mul(a, inv) != f.One() {
				t.Fatalf("inverse fails for %d in GF(%d)", a, q)
			}
			d, err := f.Div(f.Mul(a, b), a)
			if err != nil || d != b {
				t.Fatalf("division fails in GF(%d)", q)
			}
		}
	})
}
