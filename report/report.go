// Package report runs the evaluate, search and divide sequence on one
// instance and renders the outcome for people (Text) and tools (JSON).
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"linfactor/modpoly"
)

// Factor is one discovered linear factor and the quotient it leaves.
type Factor struct {
	Root     *big.Int
	Factor   modpoly.Poly
	Quotient modpoly.Poly
}

// Report collects everything computed for one (polynomial, modulus) pair.
type Report struct {
	Modulus   *big.Int
	Prime     bool
	Poly      modpoly.Poly
	X         *big.Int
	Value     *big.Int
	Factors   []Factor
	Deflation modpoly.Deflation
	Digest    string
}

// Build evaluates poly at x (nil reads as 0), searches for linear factors
// with cfg (nil for defaults), divides poly by each factor and deflates it.
// Finding no factor is not an error.
func Build(poly modpoly.Poly, p, x *big.Int, cfg *modpoly.SearchConfig) (*Report, error) {
	if x == nil {
		x = new(big.Int)
	}
	value, err := modpoly.Evaluate(poly, x, p)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	found, err := modpoly.FindLinearFactorsWithConfig(poly, p, cfg)
	if err != nil {
		return nil, fmt.Errorf("find linear factors: %w", err)
	}
	factors := make([]Factor, 0, len(found))
	for _, f := range found {
		q, err := modpoly.DivideByLinearFactor(poly, f.Poly, p)
		if err != nil {
			return nil, fmt.Errorf("divide by %s: %w", f.Poly, err)
		}
		factors = append(factors, Factor{Root: f.Root, Factor: f.Poly, Quotient: q})
	}
	defl, err := modpoly.DeflateBy(poly, found, p)
	if err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	digest, err := Digest(poly, p)
	if err != nil {
		return nil, err
	}
	return &Report{
		Modulus:   new(big.Int).Set(p),
		Prime:     modpoly.IsPrimeModulus(p),
		Poly:      poly.Clone(),
		X:         new(big.Int).Set(x),
		Value:     value,
		Factors:   factors,
		Deflation: defl,
		Digest:    digest,
	}, nil
}

// WriteText writes the human readable form of r to w.
func (r *Report) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, r.Text())
	return err
}

// Text renders r as a few lines of plain text.
func (r *Report) Text() string {
	var b strings.Builder
	kind := "prime"
	if !r.Prime {
		kind = "not prime, division may not factor"
	}
	fmt.Fprintf(&b, "polynomial: %s\n", r.Poly)
	fmt.Fprintf(&b, "modulus:    %s (%s)\n", r.Modulus, kind)
	fmt.Fprintf(&b, "digest:     %s\n", r.Digest)
	fmt.Fprintf(&b, "f(%s) mod %s = %s\n", r.X, r.Modulus, r.Value)
	if len(r.Factors) == 0 {
		fmt.Fprintf(&b, "no linear factors modulo %s\n", r.Modulus)
	} else {
		fmt.Fprintf(&b, "linear factors modulo %s: %d\n", r.Modulus, len(r.Factors))
		for _, f := range r.Factors {
			fmt.Fprintf(&b, "  %-12s root %-6s quotient %s\n", f.Factor, f.Root, f.Quotient)
		}
	}
	fmt.Fprintf(&b, "deflation:  %s\n", deflationString(r.Deflation))
	return b.String()
}

func deflationString(d modpoly.Deflation) string {
	var parts []string
	for _, rm := range d.Roots {
		if rm.Multiplicity == 0 {
			continue
		}
		term := fmt.Sprintf("(x - %s)", rm.Root)
		if rm.Root.Sign() == 0 {
			term = "x"
		}
		if rm.Multiplicity > 1 {
			term += fmt.Sprintf("^%d", rm.Multiplicity)
		}
		parts = append(parts, term)
	}
	parts = append(parts, "("+d.Cofactor.String()+")")
	return strings.Join(parts, " * ")
}

type jsonFactor struct {
	Root     string   `json:"root"`
	Factor   []string `json:"factor"`
	Quotient []string `json:"quotient"`
}

type jsonRoot struct {
	Root         string `json:"root"`
	Multiplicity int    `json:"multiplicity"`
}

type jsonReport struct {
	Modulus  string       `json:"modulus"`
	Prime    bool         `json:"prime"`
	Coeffs   []string     `json:"coeffs"`
	Poly     string       `json:"poly"`
	X        string       `json:"x"`
	Value    string       `json:"value"`
	Factors  []jsonFactor `json:"factors"`
	Roots    []jsonRoot   `json:"roots"`
	Cofactor []string     `json:"cofactor"`
	Digest   string       `json:"digest"`
}

// JSON renders r as indented JSON. Integers are decimal strings so that no
// precision is lost.
func (r *Report) JSON() ([]byte, error) {
	out := jsonReport{
		Modulus:  r.Modulus.String(),
		Prime:    r.Prime,
		Coeffs:   coeffStrings(r.Poly),
		Poly:     r.Poly.String(),
		X:        r.X.String(),
		Value:    r.Value.String(),
		Factors:  make([]jsonFactor, 0, len(r.Factors)),
		Roots:    make([]jsonRoot, 0, len(r.Deflation.Roots)),
		Cofactor: coeffStrings(r.Deflation.Cofactor),
		Digest:   r.Digest,
	}
	for _, f := range r.Factors {
		out.Factors = append(out.Factors, jsonFactor{
			Root:     f.Root.String(),
			Factor:   coeffStrings(f.Factor),
			Quotient: coeffStrings(f.Quotient),
		})
	}
	for _, rm := range r.Deflation.Roots {
		out.Roots = append(out.Roots, jsonRoot{Root: rm.Root.String(), Multiplicity: rm.Multiplicity})
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func coeffStrings(p modpoly.Poly) []string {
	out := make([]string, p.Len())
	for i := range out {
		if i < len(p.Coeffs) && p.Coeffs[i] != nil {
			out[i] = p.Coeffs[i].String()
		} else {
			out[i] = "0"
		}
	}
	return out
}
