package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"linfactor/internal/sampling"
	"linfactor/modpoly"
)

const (
	seedLabel       = "linfactor/rootsweep/v1"
	maxSweepModulus = modpoly.DefaultMaxModulus
)

// row is one JSONL record: the root-count distribution at a single prime.
type row struct {
	P         uint64  `json:"p"`
	Degree    int     `json:"degree"`
	Trials    int     `json:"trials"`
	Mean      float64 `json:"mean"`
	Histogram []int   `json:"histogram"`
}

type sweepOpts struct {
	degree int
	trials int
	seed   uint64
	monic  bool
}

func primesInRange(from, to uint64) []uint64 {
	var out []uint64
	for n := from; n <= to; n++ {
		if modpoly.IsPrimeModulus(new(big.Int).SetUint64(n)) {
			out = append(out, n)
		}
		if n == to {
			break
		}
	}
	return out
}

// sweepPrime samples o.trials polynomials modulo p and counts the distinct
// roots of each. Histogram[k] is the number of samples with exactly k roots.
func sweepPrime(p uint64, o sweepOpts) (row, error) {
	var seed, pb [8]byte
	binary.LittleEndian.PutUint64(seed[:], o.seed)
	binary.LittleEndian.PutUint64(pb[:], p)
	prng, err := sampling.NewPRNG(sampling.DeriveSeed(seedLabel, seed[:], pb[:]))
	if err != nil {
		return row{}, err
	}

	mod := new(big.Int).SetUint64(p)
	r := row{P: p, Degree: o.degree, Trials: o.trials, Histogram: make([]int, o.degree+1)}
	total := 0
	for i := 0; i < o.trials; i++ {
		poly, err := sampling.RandomPoly(prng, o.degree, mod, o.monic)
		if err != nil {
			return row{}, fmt.Errorf("p=%d trial %d: %w", p, i, err)
		}
		roots, err := modpoly.FindLinearFactors(poly, mod)
		if err != nil {
			return row{}, fmt.Errorf("p=%d trial %d: %w", p, i, err)
		}
		k := len(roots)
		for k >= len(r.Histogram) {
			r.Histogram = append(r.Histogram, 0)
		}
		r.Histogram[k]++
		total += k
	}
	if o.trials > 0 {
		r.Mean = float64(total) / float64(o.trials)
	}
	return r, nil
}

// runSweep computes one row per prime, reading and filling cache when it is
// not nil. progress, if set, is called after each prime.
func runSweep(primes []uint64, o sweepOpts, cache *rowCache, progress func(i int, r row, cached bool)) ([]row, error) {
	rows := make([]row, 0, len(primes))
	for i, p := range primes {
		var (
			r   row
			hit bool
			err error
		)
		if cache != nil {
			if r, hit, err = cache.get(p, o); err != nil {
				return nil, fmt.Errorf("cache get p=%d: %w", p, err)
			}
		}
		if !hit {
			if r, err = sweepPrime(p, o); err != nil {
				return nil, err
			}
			if cache != nil {
				if err := cache.put(r, o); err != nil {
					return nil, fmt.Errorf("cache put p=%d: %w", p, err)
				}
			}
		}
		rows = append(rows, r)
		if progress != nil {
			progress(i, r, hit)
		}
	}
	return rows, nil
}

func writeRows(w io.Writer, rows []row) error {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// mergeHistograms sums per-prime histograms into one distribution.
func mergeHistograms(rows []row) []int {
	var out []int
	for _, r := range rows {
		for k, n := range r.Histogram {
			for k >= len(out) {
				out = append(out, 0)
			}
			out[k] += n
		}
	}
	return out
}
