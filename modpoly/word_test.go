package modpoly

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestWordEvalMatchesEvaluate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	moduli := []uint64{2, 3, 17, 1<<32 - 5, MaxSearchModulus}
	for _, q := range moduli {
		p := new(big.Int).SetUint64(q)
		bound := new(big.Int).Lsh(p, 3)
		coeffs := make([]*big.Int, 9)
		for i := range coeffs {
			c := new(big.Int).Rand(rng, bound)
			if rng.Intn(2) == 0 {
				c.Neg(c)
			}
			coeffs[i] = c
		}
		poly := NewPoly(coeffs...)
		w := newWordPoly(poly, p)
		for i := 0; i < 2000; i++ {
			x := new(big.Int).Rand(rng, p)
			want, err := Evaluate(poly, x, p)
			if err != nil {
				t.Fatalf("q=%d: Evaluate: %v", q, err)
			}
			if got := w.eval(x.Uint64()); got != want.Uint64() {
				t.Fatalf("q=%d x=%s: word eval %d, Evaluate %s", q, x, got, want)
			}
		}
	}
}

func TestFitsWord(t *testing.T) {
	cases := []struct {
		p    *big.Int
		want bool
	}{
		{big.NewInt(1), false},
		{big.NewInt(2), true},
		{new(big.Int).SetUint64(MaxSearchModulus), true},
		{new(big.Int).SetUint64(MaxSearchModulus + 1), false},
		{new(big.Int).Lsh(big.NewInt(1), 70), false},
	}
	for _, c := range cases {
		if got := fitsWord(c.p); got != c.want {
			t.Fatalf("fitsWord(%s) = %v, want %v", c.p, got, c.want)
		}
	}
}
