// Package prof times the phases of a run and the work units each phase
// processed (candidate residues, sampled polynomials), so runs at different
// moduli can be compared per unit.
package prof

import (
	"sync"
	"time"
)

// Entry is one timed phase. Items counts the work units it handled; zero
// means the phase has no natural unit.
type Entry struct {
	Label string
	Dur   time.Duration
	Items uint64
}

// Total aggregates the entries sharing a label.
type Total struct {
	Label string
	Count int
	Items uint64
	Dur   time.Duration
}

// Mean is the average duration per recorded entry.
func (t Total) Mean() time.Duration {
	if t.Count == 0 {
		return 0
	}
	return t.Dur / time.Duration(t.Count)
}

// PerItem is the average duration per work unit, or zero when no units were
// recorded.
func (t Total) PerItem() time.Duration {
	if t.Items == 0 {
		return 0
	}
	return t.Dur / time.Duration(t.Items)
}

func (t Total) String() string {
	if t.Items == 0 {
		return t.Label + " " + t.Dur.String()
	}
	return t.Label + " " + t.Dur.String() + " (" + t.PerItem().String() + "/item)"
}

type recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var global recorder

// Track records the time elapsed since start under label. Use it as
// defer prof.Track(time.Now(), "phase").
func Track(start time.Time, label string) {
	TrackItems(start, label, 0)
}

// TrackItems is Track for a phase that processed items work units.
func TrackItems(start time.Time, label string, items uint64) {
	e := Entry{Label: label, Dur: time.Since(start), Items: items}
	global.mu.Lock()
	global.entries = append(global.entries, e)
	global.mu.Unlock()
}

// SnapshotAndReset hands back the recorded entries and starts a new record.
func SnapshotAndReset() []Entry {
	global.mu.Lock()
	out := global.entries
	global.entries = nil
	global.mu.Unlock()
	return out
}

// Totals groups entries by label, in the order labels first appear.
func Totals(entries []Entry) []Total {
	idx := make(map[string]int)
	var out []Total
	for _, e := range entries {
		i, ok := idx[e.Label]
		if !ok {
			i = len(out)
			idx[e.Label] = i
			out = append(out, Total{Label: e.Label})
		}
		out[i].Count++
		out[i].Items += e.Items
		out[i].Dur += e.Dur
	}
	return out
}
