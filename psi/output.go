package psi

import (
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
)

// WriteTSV writes the table with a sample_id column followed by one
// column per event. Absent cells are written as empty fields, matching
// the convention of leaving unmeasurable PSIs blank rather than zero.
func (t *Table) WriteTSV(w io.Writer) error {
	out := tsv.NewWriter(w)
	out.WriteString("sample_id")
	for _, ev := range t.events {
		out.WriteString(ev)
	}
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, sample := range t.samples {
		out.WriteString(sample)
		for _, ev := range t.events {
			if v, ok := t.Get(sample, ev); ok {
				out.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			} else {
				out.WriteString("")
			}
		}
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

// WriteSummaryTSV writes one row per event with its per-sample PSI
// summary statistics.
func (t *Table) WriteSummaryTSV(w io.Writer) error {
	out := tsv.NewWriter(w)
	out.WriteString("event_id")
	out.WriteString("n_samples")
	out.WriteString("mean")
	out.WriteString("median")
	out.WriteString("stddev")
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, s := range t.Summary() {
		out.WriteString(s.EventID)
		out.WriteString(strconv.Itoa(s.N))
		out.WriteString(strconv.FormatFloat(s.Mean, 'g', -1, 64))
		out.WriteString(strconv.FormatFloat(s.Median, 'g', -1, 64))
		out.WriteString(strconv.FormatFloat(s.StdDev, 'g', -1, 64))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
