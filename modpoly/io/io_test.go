package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"linfactor/modpoly"
)

func TestParseProblem(t *testing.T) {
	cases := []struct {
		name string
		in   string
		p    int64
		x    int64
		want modpoly.Poly
	}{
		{"numbers", `{"modulus": 17, "coeffs": [8, 8, 0, 1]}`, 17, DefaultPoint, modpoly.FromInt64(8, 8, 0, 1)},
		{"aliases", `{"P": "0x11", "coefficients": ["8", "-9", "0x0", 1], "x": -3}`, 17, -3, modpoly.FromInt64(8, -9, 0, 1)},
		{"short key", `{"p": 5, "coeffs": [0, 1]}`, 5, DefaultPoint, modpoly.FromInt64(0, 1)},
	}
	for _, c := range cases {
		pr, err := ParseProblem([]byte(c.in))
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if pr.Modulus.Int64() != c.p || pr.X.Int64() != c.x {
			t.Fatalf("%s: modulus %s x %s", c.name, pr.Modulus, pr.X)
		}
		if !pr.Poly.Equal(c.want) || len(pr.Poly.Coeffs) != len(c.want.Coeffs) {
			t.Fatalf("%s: poly %v, want %v", c.name, pr.Poly.Coeffs, c.want.Coeffs)
		}
	}
}

func TestParseProblemBigIntegers(t *testing.T) {
	in := `{"modulus": 170141183460469231731687303715884105727, "coeffs": [-340282366920938463463374607431768211457, 1]}`
	pr, err := ParseProblem([]byte(in))
	if err != nil {
		t.Fatalf("ParseProblem: %v", err)
	}
	if pr.Modulus.String() != "170141183460469231731687303715884105727" {
		t.Fatalf("modulus lost precision: %s", pr.Modulus)
	}
	if pr.Poly.Coeffs[0].String() != "-340282366920938463463374607431768211457" {
		t.Fatalf("coefficient lost precision: %s", pr.Poly.Coeffs[0])
	}
}

func TestParseProblemErrors(t *testing.T) {
	bad := []string{
		`not json`,
		`{"coeffs": [1]}`,
		`{"modulus": 7}`,
		`{"modulus": 7, "coeffs": []}`,
		`{"modulus": 7, "coeffs": [1.5]}`,
		`{"modulus": 7, "coeffs": ["abc"]}`,
		`{"modulus": 7, "coeffs": 3}`,
		`{"modulus": 7, "coeffs": [1], "x": "--1"}`,
	}
	for _, in := range bad {
		if _, err := ParseProblem([]byte(in)); err == nil {
			t.Fatalf("accepted %s", in)
		}
	}
	for _, in := range []string{`{"modulus": 0, "coeffs": [1]}`, `{"modulus": -5, "coeffs": [1]}`} {
		if _, err := ParseProblem([]byte(in)); !errors.Is(err, modpoly.ErrDomain) {
			t.Fatalf("%s: want ErrDomain, got %v", in, err)
		}
	}
}

func TestLoadProblem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.json")
	if err := os.WriteFile(path, []byte(`{"modulus": 17, "coeffs": [8, 8, 0, 1], "x": 2}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	pr, err := LoadProblem(path)
	if err != nil {
		t.Fatalf("LoadProblem: %v", err)
	}
	v, err := modpoly.Evaluate(pr.Poly, pr.X, pr.Modulus)
	if err != nil || v.Int64() != 15 {
		t.Fatalf("evaluate loaded problem: %v %v", v, err)
	}
	if _, err := LoadProblem(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

func TestParseCoeffsAndModulus(t *testing.T) {
	p, err := ParseCoeffs(" 8, 8 ,0,1")
	if err != nil {
		t.Fatalf("ParseCoeffs: %v", err)
	}
	if !p.Equal(modpoly.FromInt64(8, 8, 0, 1)) {
		t.Fatalf("ParseCoeffs = %v", p.Coeffs)
	}
	for _, s := range []string{"", "1,,2", "1,x"} {
		if _, err := ParseCoeffs(s); err == nil {
			t.Fatalf("ParseCoeffs accepted %q", s)
		}
	}
	m, err := ParseModulus("0x11")
	if err != nil || m.Int64() != 17 {
		t.Fatalf("ParseModulus(0x11) = %v, %v", m, err)
	}
	if _, err := ParseModulus("0"); !errors.Is(err, modpoly.ErrDomain) {
		t.Fatalf("ParseModulus(0): want ErrDomain, got %v", err)
	}
	if _, err := ParseModulus("-0x3"); !errors.Is(err, modpoly.ErrDomain) {
		t.Fatalf("ParseModulus(-0x3): want ErrDomain, got %v", err)
	}
}
