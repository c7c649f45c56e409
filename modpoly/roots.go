package modpoly

import (
	"fmt"
	"math"
	"math/big"
)

const (
	// DefaultMaxModulus is the default root search ceiling, the largest
	// modulus whose residues can be counted in 32 bits.
	DefaultMaxModulus uint64 = math.MaxUint32

	// MaxSearchModulus is the largest ceiling SearchConfig accepts.
	MaxSearchModulus uint64 = 1<<61 - 1
)

// Observer is called once per candidate with the value of the polynomial
// at that candidate, in ascending candidate order.
type Observer func(candidate, value uint64)

// SearchConfig tunes FindLinearFactorsWithConfig.
type SearchConfig struct {
	// MaxModulus is the largest modulus the search accepts. Zero selects
	// DefaultMaxModulus; values above MaxSearchModulus are clamped.
	MaxModulus uint64

	// Observer, when set, sees every candidate.
	Observer Observer
}

// DefaultSearchConfig returns the configuration used by FindLinearFactors.
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{MaxModulus: DefaultMaxModulus}
}

func (c *SearchConfig) ceiling() uint64 {
	switch {
	case c == nil || c.MaxModulus == 0:
		return DefaultMaxModulus
	case c.MaxModulus > MaxSearchModulus:
		return MaxSearchModulus
	}
	return c.MaxModulus
}

// LinearFactor is the polynomial [(-Root) mod p, 1], i.e. x - Root.
type LinearFactor struct {
	Root *big.Int
	Poly
}

// NewLinearFactor returns x - r with the constant term reduced into [0, p).
func NewLinearFactor(r, p *big.Int) (LinearFactor, error) {
	if err := checkModulus(p); err != nil {
		return LinearFactor{}, err
	}
	root := floorMod(new(big.Int), r, p)
	c0 := new(big.Int).Neg(root)
	c0.Mod(c0, p)
	return LinearFactor{
		Root: root,
		Poly: Poly{Coeffs: []*big.Int{c0, big.NewInt(1)}},
	}, nil
}

// FindLinearFactors returns x - r for every r in [0, p) with poly(r) = 0 mod p,
// in ascending order of r. An empty result means poly has no roots.
func FindLinearFactors(poly Poly, p *big.Int) ([]LinearFactor, error) {
	return FindLinearFactorsWithConfig(poly, p, nil)
}

// FindLinearFactorsWithConfig is FindLinearFactors with an explicit search
// ceiling and observer. A nil cfg behaves like DefaultSearchConfig.
func FindLinearFactorsWithConfig(poly Poly, p *big.Int, cfg *SearchConfig) ([]LinearFactor, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}
	limit := cfg.ceiling()
	if !p.IsUint64() || p.Uint64() > limit {
		return nil, fmt.Errorf("modpoly: modulus %s above %d: %w", p, limit, ErrRange)
	}
	var observe Observer
	if cfg != nil {
		observe = cfg.Observer
	}

	n := p.Uint64()
	factors := []LinearFactor{}
	found := func(r uint64) error {
		f, err := NewLinearFactor(new(big.Int).SetUint64(r), p)
		if err != nil {
			return err
		}
		factors = append(factors, f)
		return nil
	}

	if !fitsWord(p) {
		// p == 1: the only residue is 0 and everything vanishes.
		v, err := Evaluate(poly, zero, p)
		if err != nil {
			return nil, err
		}
		if observe != nil {
			observe(0, v.Uint64())
		}
		if v.Sign() == 0 {
			if err := found(0); err != nil {
				return nil, err
			}
		}
		return factors, nil
	}

	w := newWordPoly(poly, p)
	for r := uint64(0); r < n; r++ {
		v := w.eval(r)
		if observe != nil {
			observe(r, v)
		}
		if v == 0 {
			if err := found(r); err != nil {
				return nil, err
			}
		}
	}
	return factors, nil
}
