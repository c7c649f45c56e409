// Package sampling draws reproducible random polynomials from a keyed PRNG.
package sampling

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"

	"linfactor/modpoly"
)

// SeedSize is the length in bytes of seeds returned by DeriveSeed.
const SeedSize = 32

// DeriveSeed expands label and parts into a SeedSize-byte key with SHAKE-256.
// Each part is length-prefixed so distinct part lists never collide.
func DeriveSeed(label string, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	writeFrame(h, []byte(label))
	for _, p := range parts {
		writeFrame(h, p)
	}
	out := make([]byte, SeedSize)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("DeriveSeed: read output: %w", err))
	}
	return out
}

func writeFrame(w io.Writer, b []byte) {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(b)))
	if _, err := w.Write(n[:]); err != nil {
		panic(fmt.Errorf("DeriveSeed: write length: %w", err))
	}
	if _, err := w.Write(b); err != nil {
		panic(fmt.Errorf("DeriveSeed: write payload: %w", err))
	}
}

// NewPRNG returns a deterministic byte stream keyed by seed.
func NewPRNG(seed []byte) (io.Reader, error) {
	if len(seed) == 0 {
		return nil, errors.New("sampling: empty seed")
	}
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("sampling: keyed prng: %w", err)
	}
	return prng, nil
}

// Uniform returns an integer uniform in [0, p) read from r by rejection
// sampling over p.BitLen() bits.
func Uniform(r io.Reader, p *big.Int) (*big.Int, error) {
	if p == nil || p.Sign() <= 0 {
		return nil, fmt.Errorf("sampling: modulus %v: %w", p, modpoly.ErrDomain)
	}
	bits := p.BitLen()
	buf := make([]byte, (bits+7)/8)
	mask := byte(0xff >> (uint(len(buf)*8 - bits)))
	v := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		v.SetBytes(buf)
		if v.Cmp(p) < 0 {
			return v, nil
		}
	}
}

// RandomPoly draws degree+1 coefficients uniform in [0, p). With monic set
// the leading coefficient is 1, otherwise it is redrawn until nonzero so the
// polynomial has exactly the requested degree (p = 1 yields the zero
// polynomial padded to degree+1 coefficients).
func RandomPoly(r io.Reader, degree int, p *big.Int, monic bool) (modpoly.Poly, error) {
	if degree < 0 {
		return modpoly.Poly{}, fmt.Errorf("sampling: negative degree %d", degree)
	}
	coeffs := make([]*big.Int, degree+1)
	for i := 0; i < degree; i++ {
		c, err := Uniform(r, p)
		if err != nil {
			return modpoly.Poly{}, err
		}
		coeffs[i] = c
	}
	switch {
	case monic:
		coeffs[degree] = new(big.Int).Mod(big.NewInt(1), p)
	case p.Cmp(big.NewInt(1)) == 0:
		coeffs[degree] = new(big.Int)
	default:
		for coeffs[degree] == nil || coeffs[degree].Sign() == 0 {
			c, err := Uniform(r, p)
			if err != nil {
				return modpoly.Poly{}, err
			}
			coeffs[degree] = c
		}
	}
	return modpoly.Poly{Coeffs: coeffs}, nil
}
