package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"linfactor/prof"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rootsweep: ")

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := run(cfg, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
	for _, t := range prof.Totals(prof.SnapshotAndReset()) {
		log.Printf("%v", t)
	}
}

// run sweeps the configured range and writes the requested outputs. The
// cache, when configured, is closed before run returns on every path.
func run(cfg sweepConfig, progressOut io.Writer) (err error) {
	start := time.Now()
	primes := primesInRange(cfg.From, cfg.To)
	prof.TrackItems(start, "primes", cfg.To-cfg.From+1)
	if len(primes) == 0 {
		return fmt.Errorf("no primes in [%d, %d]", cfg.From, cfg.To)
	}

	var cache *rowCache
	if cfg.Cache != "" {
		if cache, err = openCache(cfg.Cache); err != nil {
			return err
		}
		defer func() {
			if cerr := cache.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close cache: %w", cerr)
			}
		}()
	}

	start = time.Now()
	hits := 0
	rows, err := runSweep(primes, cfg.opts(), cache, func(i int, r row, cached bool) {
		if cached {
			hits++
		}
		fmt.Fprintf(progressOut, "\r[%d/%d] p=%d mean=%.3f", i+1, len(primes), r.P, r.Mean)
	})
	fmt.Fprintln(progressOut)
	if err != nil {
		return err
	}
	prof.TrackItems(start, "sweep", uint64(len(primes)-hits)*uint64(cfg.Trials))
	if cache != nil {
		log.Printf("%d of %d primes served from %s", hits, len(primes), cfg.Cache)
	}

	if cfg.Out != "" {
		start = time.Now()
		if err := writeFile(cfg.Out, func(f *os.File) error { return writeRows(f, rows) }); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Out, err)
		}
		prof.TrackItems(start, "jsonl", uint64(len(rows)))
	}
	if cfg.HTML != "" {
		start = time.Now()
		if err := writeFile(cfg.HTML, func(f *os.File) error { return renderCharts(f, rows) }); err != nil {
			return fmt.Errorf("render %s: %w", cfg.HTML, err)
		}
		prof.Track(start, "html")
	}
	return nil
}

func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
