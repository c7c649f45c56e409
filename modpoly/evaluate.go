package modpoly

import "math/big"

// Evaluate returns poly(x) mod p in [0, p). x may be any integer. A running
// power of x and a running sum are both reduced after every step, so
// intermediate values stay below p^2 in magnitude.
func Evaluate(poly Poly, x, p *big.Int) (*big.Int, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	xr := new(big.Int)
	if x != nil {
		floorMod(xr, x, p)
	}
	sum := new(big.Int)
	pow := new(big.Int).Mod(one, p)
	term := new(big.Int)
	for _, c := range poly.Coeffs {
		if !isZero(c) {
			term.Mul(c, pow)
			sum.Add(sum, term)
			floorMod(sum, sum, p)
		}
		pow.Mul(pow, xr)
		pow.Mod(pow, p)
	}
	return sum, nil
}
