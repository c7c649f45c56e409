package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"linfactor/modpoly"
	polyio "linfactor/modpoly/io"
	"linfactor/prof"
	"linfactor/report"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: linfactor [-problem file.json | -p <modulus> -coeffs <c0,c1,...>] [options]

Finds every linear factor (x - r) of an integer polynomial modulo p by trying
each r in [0, p), then prints f(x) mod p and the quotient left by each factor.

Flags:
  -problem     <file>   JSON problem {"modulus": 17, "coeffs": [8, 8, 0, 1], "x": 2}
  -p           <int>    modulus (decimal or 0x hex)
  -coeffs      <list>   comma separated coefficients, constant term first
  -x           <int>    evaluation point (default: 2, or "x" from the problem file)
  -max-modulus <uint>   largest modulus the search accepts (default: 2^32-1)
  -trace                log every candidate and its value
  -json                 print the report as JSON
  -timings              log phase timings on exit`)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("linfactor: ")
	flag.Usage = usage

	problemPath := flag.String("problem", "", "JSON problem file")
	modulus := flag.String("p", "", "modulus")
	coeffs := flag.String("coeffs", "", "comma separated coefficients, constant term first")
	xFlag := flag.String("x", "", "evaluation point")
	maxModulus := flag.Uint64("max-modulus", modpoly.DefaultMaxModulus, "largest modulus the search accepts")
	trace := flag.Bool("trace", false, "log every candidate")
	asJSON := flag.Bool("json", false, "print JSON")
	timings := flag.Bool("timings", false, "log phase timings")
	flag.Parse()

	prob, err := loadProblem(*problemPath, *modulus, *coeffs)
	if err != nil {
		usage()
		log.Fatalf("%v", err)
	}
	if *xFlag != "" {
		x, err := polyio.ParseInt(*xFlag)
		if err != nil {
			log.Fatalf("-x: %v", err)
		}
		prob.X = x
	}

	cfg := modpoly.DefaultSearchConfig()
	cfg.MaxModulus = *maxModulus
	if *trace {
		cfg.Observer = func(candidate, value uint64) {
			mark := ""
			if value == 0 {
				mark = "  root"
			}
			log.Printf("f(%d) = %d%s", candidate, value, mark)
		}
	}

	start := time.Now()
	rep, err := report.Build(prob.Poly, prob.Modulus, prob.X, cfg)
	prof.TrackItems(start, "build", candidates(prob.Modulus))
	if err != nil {
		log.Fatalf("%v", err)
	}

	start = time.Now()
	if *asJSON {
		data, err := rep.JSON()
		if err != nil {
			log.Fatalf("encode report: %v", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("write report: %v", err)
		}
	} else if err := rep.WriteText(os.Stdout); err != nil {
		log.Fatalf("write report: %v", err)
	}
	prof.Track(start, "print")

	if *timings {
		for _, t := range prof.Totals(prof.SnapshotAndReset()) {
			log.Printf("%v", t)
		}
	}
}

// candidates is the number of residues the search tries for modulus p.
func candidates(p *big.Int) uint64 {
	if p == nil || !p.IsUint64() {
		return 0
	}
	return p.Uint64()
}

// loadProblem reads the instance from a file when path is set and from the
// -p/-coeffs flags otherwise.
func loadProblem(path, modulus, coeffs string) (polyio.Problem, error) {
	if path != "" {
		if modulus != "" || coeffs != "" {
			return polyio.Problem{}, fmt.Errorf("-problem cannot be combined with -p or -coeffs")
		}
		return polyio.LoadProblem(path)
	}
	if modulus == "" || coeffs == "" {
		return polyio.Problem{}, fmt.Errorf("need -problem, or both -p and -coeffs")
	}
	p, err := polyio.ParseModulus(modulus)
	if err != nil {
		return polyio.Problem{}, fmt.Errorf("-p: %w", err)
	}
	poly, err := polyio.ParseCoeffs(coeffs)
	if err != nil {
		return polyio.Problem{}, fmt.Errorf("-coeffs: %w", err)
	}
	return polyio.Problem{Modulus: p, Poly: poly, X: big.NewInt(polyio.DefaultPoint)}, nil
}
