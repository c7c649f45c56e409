package report

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"

	"linfactor/modpoly"
)

const (
	digestLabel = "linfactor/instance/v1"
	digestSize  = 32
)

// Digest identifies a (polynomial, modulus) instance. It hashes the modulus
// and the polynomial reduced modulo p with SHAKE-256, so instances that agree
// modulo p share a digest. The result is hex encoded.
func Digest(poly modpoly.Poly, p *big.Int) (string, error) {
	reduced, err := modpoly.Reduce(poly, p)
	if err != nil {
		return "", err
	}
	h := sha3.NewShake256()
	frame(h, []byte(digestLabel))
	frame(h, p.Bytes())
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(reduced.Coeffs)))
	write(h, n[:])
	for _, c := range reduced.Coeffs {
		frame(h, c.Bytes())
	}
	out := make([]byte, digestSize)
	if _, err := h.Read(out); err != nil {
		return "", fmt.Errorf("report: digest: %w", err)
	}
	return hex.EncodeToString(out), nil
}

func frame(h io.Writer, b []byte) {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(b)))
	write(h, n[:])
	write(h, b)
}

// write feeds h; SHAKE writers never fail.
func write(h io.Writer, b []byte) {
	_, _ = h.Write(b)
}
