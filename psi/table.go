package psi

import (
	"fmt"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// Table is a (sample x event) table of PSI values. A missing cell means
// no valid PSI could be computed for that pair. Rows follow the read
// count table's sample order; columns follow the annotation order of the
// events that produced at least one value.
type Table struct {
	samples []string
	events  []string
	values  map[string]map[string]float64 // event -> sample -> psi
}

// Samples returns the row ids in order.
func (t *Table) Samples() []string { return t.samples }

// Events returns the column ids in order.
func (t *Table) Events() []string { return t.events }

// Get returns the PSI value for the (sample, event) pair, and whether one
// was computed.
func (t *Table) Get(sample, event string) (float64, bool) {
	v, ok := t.values[event][sample]
	return v, ok
}

// Calculate computes PSI for every event and assembles the result into
// one table. Events are independent units of work and are mapped over
// opts.Parallelism workers; the fold is keyed by event id, so the result
// is identical whether the run was sequential or parallel.
//
// Per-event failures (malformed definitions) are logged and counted and
// yield an absent column. Only structural problems, a read count table
// with no samples or an unknown reduction method, are returned as errors.
func Calculate(events []Event, tbl *ReadCountTable, opts Opts) (*Table, Stats, error) {
	if tbl == nil || len(tbl.Samples()) == 0 {
		return nil, Stats{}, errors.E("read count table has no samples")
	}
	if opts.Method != MethodMean && opts.Method != MethodMin {
		return nil, Stats{}, errors.E(fmt.Sprintf("unknown reduction method %q", opts.Method))
	}

	// The annotation may carry multiple physical rows per event id,
	// differing only in flanking-exon metadata. The first row's junction
	// mapping wins.
	uniq := events[:0:0]
	seen := map[string]bool{}
	for _, ev := range events {
		if seen[ev.ID] {
			continue
		}
		seen[ev.ID] = true
		uniq = append(uniq, ev)
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(uniq) {
		parallelism = len(uniq)
	}
	if parallelism < 1 {
		parallelism = 1
	}
	log.Printf("computing PSI for %d events across %d samples (%d workers)",
		len(uniq), len(tbl.Samples()), parallelism)

	results := make([]map[string]float64, len(uniq))
	jobStats := make([]Stats, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		stats := &jobStats[jobIdx]
		for i := jobIdx; i < len(uniq); i += parallelism {
			ev := uniq[i]
			stats.Events++
			psis, err := EventPSI(ev, tbl, stats, opts)
			if err != nil {
				stats.MalformedEvents++
				log.Error.Printf("skipping event %s: %v", ev.ID, err)
				continue
			}
			if len(psis) == 0 {
				stats.EmptyEvents++
				continue
			}
			results[i] = psis
		}
		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{}
	for _, s := range jobStats {
		stats = stats.Merge(s)
	}

	out := &Table{
		samples: tbl.Samples(),
		values:  map[string]map[string]float64{},
	}
	for i, psis := range results {
		if psis == nil {
			continue
		}
		out.events = append(out.events, uniq[i].ID)
		out.values[uniq[i].ID] = psis
	}
	return out, stats, nil
}
