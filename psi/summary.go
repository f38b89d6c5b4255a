package psi

import (
	"github.com/grailbio/base/log"
	"github.com/montanaflynn/stats"
)

// EventSummary describes the distribution of one event's PSI values over
// the samples that produced one.
type EventSummary struct {
	EventID string
	// N is the number of samples with a PSI value for the event.
	N      int
	Mean   float64
	Median float64
	StdDev float64
}

// Summary computes per-event summary statistics in column order. Events
// in the table always have at least one value.
func (t *Table) Summary() []EventSummary {
	summaries := make([]EventSummary, 0, len(t.events))
	for _, ev := range t.events {
		col := t.values[ev]
		vals := make([]float64, 0, len(col))
		for _, sample := range t.samples {
			if v, ok := col[sample]; ok {
				vals = append(vals, v)
			}
		}
		mean, err := stats.Mean(vals)
		if err != nil {
			log.Error.Printf("event %s: summarizing %d values: %v", ev, len(vals), err)
			continue
		}
		median, _ := stats.Median(vals)
		stddev, _ := stats.StdDevP(vals)
		summaries = append(summaries, EventSummary{
			EventID: ev,
			N:       len(vals),
			Mean:    mean,
			Median:  median,
			StdDev:  stddev,
		})
	}
	return summaries
}
