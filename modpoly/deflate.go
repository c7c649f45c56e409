package modpoly

import "math/big"

// RootMultiplicity pairs a root with the number of times x - Root divides
// the polynomial.
type RootMultiplicity struct {
	Root         *big.Int
	Multiplicity int
}

// Deflation is the result of Deflate: poly = Cofactor * prod (x - r)^m mod p.
type Deflation struct {
	Roots    []RootMultiplicity
	Cofactor Poly
}

// Deflate divides every linear factor out of poly as many times as it goes,
// in ascending root order. The cofactor has no roots left in [0, p) unless
// it is the zero polynomial. Multiplicities are exact for prime p.
func Deflate(poly Poly, p *big.Int) (Deflation, error) {
	factors, err := FindLinearFactors(poly, p)
	if err != nil {
		return Deflation{}, err
	}
	return DeflateBy(poly, factors, p)
}

// DeflateBy is Deflate with the factors already found by FindLinearFactors
// or FindLinearFactorsWithConfig.
func DeflateBy(poly Poly, factors []LinearFactor, p *big.Int) (Deflation, error) {
	cur, err := Reduce(poly, p)
	if err != nil {
		return Deflation{}, err
	}
	roots := make([]RootMultiplicity, 0, len(factors))
	for _, f := range factors {
		m := 0
		for len(cur.Coeffs) > 1 {
			q, rem, err := DivRem(cur, f.Poly, p)
			if err != nil {
				return Deflation{}, err
			}
			if rem.Sign() != 0 {
				break
			}
			cur = q
			m++
		}
		roots = append(roots, RootMultiplicity{Root: new(big.Int).Set(f.Root), Multiplicity: m})
	}
	return Deflation{Roots: roots, Cofactor: cur}, nil
}
