package modpoly

import (
	"math/big"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// wordPoly is a polynomial reduced modulo a word-size q, ready for repeated
// evaluation with Barrett reduction.
type wordPoly struct {
	coeffs []uint64
	q      uint64
	brc    []uint64
}

// newWordPoly reduces poly modulo p, which must satisfy 2 <= p <= MaxSearchModulus.
func newWordPoly(poly Poly, p *big.Int) wordPoly {
	q := p.Uint64()
	coeffs := make([]uint64, len(poly.Coeffs))
	c := new(big.Int)
	for i := range poly.Coeffs {
		coeffs[i] = floorMod(c, poly.Coeffs[i], p).Uint64()
	}
	return wordPoly{coeffs: coeffs, q: q, brc: ring.BRedParams(q)}
}

// eval returns poly(x) mod q by Horner's rule. x must be below q.
func (w wordPoly) eval(x uint64) uint64 {
	var acc uint64
	for i := len(w.coeffs) - 1; i >= 0; i-- {
		acc = ring.BRed(acc, x, w.q, w.brc) + w.coeffs[i]
		if acc >= w.q {
			acc -= w.q
		}
	}
	return acc
}

// fitsWord reports whether p can use the Barrett evaluator.
func fitsWord(p *big.Int) bool {
	return p.IsUint64() && p.Uint64() >= 2 && p.Uint64() <= MaxSearchModulus
}
