package modpoly

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/ring"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// checkModulus rejects nil, zero and negative moduli.
func checkModulus(p *big.Int) error {
	if p == nil {
		return fmt.Errorf("modpoly: nil modulus: %w", ErrDomain)
	}
	if p.Sign() <= 0 {
		return fmt.Errorf("modpoly: modulus %s: %w", p, ErrDomain)
	}
	return nil
}

// floorMod sets z = x mod p in [0, p) and returns z. big.Int.Mod is the
// Euclidean remainder, which equals the floor remainder for p > 0.
func floorMod(z, x, p *big.Int) *big.Int {
	if x == nil {
		return z.SetInt64(0)
	}
	return z.Mod(x, p)
}

// Reduce returns a copy of poly with every coefficient in [0, p) and leading
// zeros removed.
func Reduce(poly Poly, p *big.Int) (Poly, error) {
	if err := checkModulus(p); err != nil {
		return Poly{}, err
	}
	out := make([]*big.Int, len(poly.Coeffs))
	for i, c := range poly.Coeffs {
		out[i] = floorMod(new(big.Int), c, p)
	}
	return Poly{Coeffs: trim(out)}, nil
}

// Mul returns a*b with coefficients reduced into [0, p) and leading zeros
// removed.
func Mul(a, b Poly, p *big.Int) (Poly, error) {
	if err := checkModulus(p); err != nil {
		return Poly{}, err
	}
	na, nb := a.Len(), b.Len()
	out := make([]*big.Int, na+nb-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i < na; i++ {
		ai := coeffAt(a, i)
		if ai.Sign() == 0 {
			continue
		}
		for j := 0; j < nb; j++ {
			tmp.Mul(ai, coeffAt(b, j))
			out[i+j].Add(out[i+j], tmp)
			out[i+j].Mod(out[i+j], p)
		}
	}
	return Poly{Coeffs: trim(out)}, nil
}

// IsPrimeModulus reports whether p is prime. Word-size moduli go through
// lattigo's deterministic test; larger ones use 20 Miller-Rabin rounds plus
// Baillie-PSW.
func IsPrimeModulus(p *big.Int) bool {
	if p == nil || p.Sign() <= 0 {
		return false
	}
	if p.IsUint64() {
		return ring.IsPrime(p.Uint64())
	}
	return p.ProbablyPrime(20)
}
