package modpoly

import (
	"fmt"
	"math/big"
)

// DivideByLinearFactor divides poly by factor = x + c modulo p and returns
// the quotient with coefficients in [0, p). The remainder is dropped without
// being checked: factor is expected to come from FindLinearFactors. Use
// DivRem when the remainder matters.
//
// The quotient has one coefficient fewer than poly, leading zeros removed,
// and is never shorter than [0].
func DivideByLinearFactor(poly, factor Poly, p *big.Int) (Poly, error) {
	q, _, err := DivRem(poly, factor, p)
	return q, err
}

// DivRem divides poly by factor = x + c modulo p by synthetic division and
// returns the quotient and the remainder poly(-c) mod p.
func DivRem(poly, factor Poly, p *big.Int) (Poly, *big.Int, error) {
	if err := checkModulus(p); err != nil {
		return Poly{}, nil, err
	}
	r, err := linearRoot(factor)
	if err != nil {
		return Poly{}, nil, err
	}

	n := len(poly.Coeffs)
	if n <= 1 {
		rem := floorMod(new(big.Int), coeffAt(poly, 0), p)
		return Zero(), rem, nil
	}

	quot := make([]*big.Int, n-1)
	acc := new(big.Int)
	for i := n - 1; i >= 1; i-- {
		acc.Mul(acc, r)
		acc.Add(acc, coeffAt(poly, i))
		floorMod(acc, acc, p)
		quot[i-1] = new(big.Int).Set(acc)
	}
	acc.Mul(acc, r)
	acc.Add(acc, coeffAt(poly, 0))
	floorMod(acc, acc, p)

	return Poly{Coeffs: trim(quot)}, acc, nil
}

// linearRoot checks that factor is exactly [c, 1] and returns -c.
func linearRoot(factor Poly) (*big.Int, error) {
	if len(factor.Coeffs) != 2 {
		return nil, fmt.Errorf("modpoly: divisor has %d coefficients: %w", len(factor.Coeffs), ErrPrecondition)
	}
	c0, c1 := factor.Coeffs[0], factor.Coeffs[1]
	if c0 == nil || c1 == nil {
		return nil, fmt.Errorf("modpoly: divisor has nil coefficient: %w", ErrPrecondition)
	}
	if c1.Cmp(one) != 0 {
		return nil, fmt.Errorf("modpoly: divisor leading coefficient %s: %w", c1, ErrPrecondition)
	}
	return new(big.Int).Neg(c0), nil
}
