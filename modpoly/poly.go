package modpoly

import (
	"bytes"
	"fmt"
	"math/big"
)

// Poly represents a polynomial over Z, Coeffs[i] being the coefficient of x^i.
// The zero polynomial is [0]; a Poly with no coefficients is read as zero.
type Poly struct {
	Coeffs []*big.Int
}

// NewPoly copies the given coefficients into a new Poly. Nil entries are
// read as zero. Without arguments it returns the zero polynomial.
func NewPoly(coeffs ...*big.Int) Poly {
	if len(coeffs) == 0 {
		return Zero()
	}
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		out[i] = new(big.Int)
		if c != nil {
			out[i].Set(c)
		}
	}
	return Poly{Coeffs: out}
}

// FromInt64 builds a Poly from machine-size coefficients.
func FromInt64(coeffs ...int64) Poly {
	if len(coeffs) == 0 {
		return Zero()
	}
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		out[i] = big.NewInt(c)
	}
	return Poly{Coeffs: out}
}

// Zero returns the zero polynomial [0].
func Zero() Poly {
	return Poly{Coeffs: []*big.Int{new(big.Int)}}
}

// Clone returns a deep copy of p.
func (p Poly) Clone() Poly {
	return NewPoly(p.Coeffs...)
}

// Len returns the number of stored coefficients, counting the empty Poly as [0].
func (p Poly) Len() int {
	if len(p.Coeffs) == 0 {
		return 1
	}
	return len(p.Coeffs)
}

// Degree returns the index of the highest nonzero coefficient, ignoring
// stored leading zeros. The zero polynomial has degree 0.
func (p Poly) Degree() int {
	d := len(p.Coeffs) - 1
	for d > 0 && isZero(p.Coeffs[d]) {
		d--
	}
	if d < 0 {
		return 0
	}
	return d
}

// IsZero reports whether every coefficient is zero over Z.
func (p Poly) IsZero() bool {
	for _, c := range p.Coeffs {
		if !isZero(c) {
			return false
		}
	}
	return true
}

// Equal compares two polynomials over Z, ignoring leading zeros.
func (p Poly) Equal(q Poly) bool {
	d := p.Degree()
	if d != q.Degree() {
		return false
	}
	for i := 0; i <= d; i++ {
		if coeffAt(p, i).Cmp(coeffAt(q, i)) != 0 {
			return false
		}
	}
	return true
}

// String prints p highest degree first, e.g. "x^3 + 8x + 8".
func (p Poly) String() string {
	var buf bytes.Buffer
	first := true
	for i := p.Degree(); i >= 0; i-- {
		c := coeffAt(p, i)
		if c.Sign() == 0 && !(first && i == 0) {
			continue
		}
		abs := new(big.Int).Abs(c)
		switch {
		case first && c.Sign() < 0:
			buf.WriteString("-")
		case !first && c.Sign() < 0:
			buf.WriteString(" - ")
		case !first:
			buf.WriteString(" + ")
		}
		first = false
		if i == 0 || abs.Cmp(one) != 0 {
			buf.WriteString(abs.String())
		}
		switch {
		case i == 1:
			buf.WriteString("x")
		case i > 1:
			fmt.Fprintf(&buf, "x^%d", i)
		}
	}
	return buf.String()
}

// coeffAt returns the i-th coefficient, zero when missing.
func coeffAt(p Poly, i int) *big.Int {
	if i >= len(p.Coeffs) || p.Coeffs[i] == nil {
		return zero
	}
	return p.Coeffs[i]
}

// trim drops leading zero coefficients, keeping at least one.
func trim(coeffs []*big.Int) []*big.Int {
	n := len(coeffs)
	for n > 1 && isZero(coeffs[n-1]) {
		n--
	}
	if n == 0 {
		return []*big.Int{new(big.Int)}
	}
	return coeffs[:n]
}

func isZero(c *big.Int) bool {
	return c == nil || c.Sign() == 0
}
