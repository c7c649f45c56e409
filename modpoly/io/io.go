package io

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"linfactor/modpoly"
)

// DefaultPoint is the evaluation point used when a problem file has none.
const DefaultPoint = 2

// Problem is a polynomial together with its modulus and an evaluation point.
type Problem struct {
	Modulus *big.Int
	Poly    modpoly.Poly
	X       *big.Int
}

// LoadProblem reads a problem file, e.g. {"modulus": 17, "coeffs": [8, 8, 0, 1]}.
// Accepted keys: modulus/p/P, coeffs/coefficients, x.
func LoadProblem(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, err
	}
	pr, err := ParseProblem(data)
	if err != nil {
		return Problem{}, fmt.Errorf("%s: %w", path, err)
	}
	return pr, nil
}

// ParseProblem decodes a problem from JSON. Integers may be JSON numbers or
// strings in decimal or 0x-prefixed hex.
func ParseProblem(data []byte) (Problem, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Problem{}, err
	}
	field := func(names ...string) (json.RawMessage, bool) {
		for _, n := range names {
			for k, v := range raw {
				if strings.EqualFold(k, n) {
					return v, true
				}
			}
		}
		return nil, false
	}

	var pr Problem
	mraw, ok := field("modulus", "p")
	if !ok {
		return Problem{}, fmt.Errorf("missing modulus")
	}
	m, err := decodeInt(mraw)
	if err != nil {
		return Problem{}, fmt.Errorf("modulus: %w", err)
	}
	if m.Sign() <= 0 {
		return Problem{}, fmt.Errorf("modulus %s: %w", m, modpoly.ErrDomain)
	}
	pr.Modulus = m

	craw, ok := field("coeffs", "coefficients")
	if !ok {
		return Problem{}, fmt.Errorf("missing coeffs")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(craw, &items); err != nil {
		return Problem{}, fmt.Errorf("coeffs: %w", err)
	}
	if len(items) == 0 {
		return Problem{}, fmt.Errorf("coeffs: empty list")
	}
	coeffs := make([]*big.Int, len(items))
	for i, it := range items {
		if coeffs[i], err = decodeInt(it); err != nil {
			return Problem{}, fmt.Errorf("coeffs[%d]: %w", i, err)
		}
	}
	pr.Poly = modpoly.Poly{Coeffs: coeffs}

	pr.X = big.NewInt(DefaultPoint)
	if xraw, ok := field("x"); ok {
		if pr.X, err = decodeInt(xraw); err != nil {
			return Problem{}, fmt.Errorf("x: %w", err)
		}
	}
	return pr, nil
}

// decodeInt accepts a JSON integer literal or a string holding one.
func decodeInt(raw json.RawMessage) (*big.Int, error) {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
	}
	return ParseInt(s)
}

// ParseInt parses a signed decimal or 0x-prefixed hex integer.
func ParseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	base := 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		base, s = 16, s[2:]
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok || s == "" || strings.ContainsAny(s, "+-") {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// ParseModulus parses a modulus and checks that it is positive.
func ParseModulus(s string) (*big.Int, error) {
	m, err := ParseInt(s)
	if err != nil {
		return nil, err
	}
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("modulus %s: %w", m, modpoly.ErrDomain)
	}
	return m, nil
}

// ParseCoeffs parses a comma separated coefficient list, lowest degree
// first, e.g. "8,8,0,1".
func ParseCoeffs(s string) (modpoly.Poly, error) {
	parts := strings.Split(s, ",")
	if strings.TrimSpace(s) == "" {
		return modpoly.Poly{}, fmt.Errorf("empty coefficient list")
	}
	coeffs := make([]*big.Int, len(parts))
	for i, part := range parts {
		c, err := ParseInt(part)
		if err != nil {
			return modpoly.Poly{}, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return modpoly.Poly{Coeffs: coeffs}, nil
}
