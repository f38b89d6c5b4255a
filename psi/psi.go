// Package psi computes percent-spliced-in (PSI) values for alternative
// splicing events from junction read counts. For each (event, sample)
// pair it decides whether the junction evidence is deep and consistent
// enough to trust, and if so computes
//
//	psi = isoform2 / (isoform1 + isoform2)
//
// over the reduced per-isoform reads. Samples with rejected evidence are
// simply absent from the output table.
package psi

import (
	"github.com/grailbio/base/log"
)

// EventPSI computes PSI for a single event across every sample in the
// read count table. The returned map has one entry per sample that
// produced a valid PSI; an empty event returns a nil map. The returned
// error marks a malformed event definition and never a per-sample
// failure; callers are expected to skip such events.
func EventPSI(event Event, tbl *ReadCountTable, stats *Stats, opts Opts) (map[string]float64, error) {
	if err := event.validate(tbl); err != nil {
		return nil, err
	}
	nJunctions := event.NJunctions()

	iso1BySample := map[string][]int{}
	iso2BySample := map[string][]int{}
	for _, sample := range tbl.Samples() {
		if hasIllegalReads(event, tbl, sample, opts.MinReads) {
			stats.IllegalSamples++
			if opts.Debug {
				log.Debug.Printf("event %s: sample %s: excluded, illegal junction coverage", event.ID, sample)
			}
			continue
		}
		iso1, obs1 := gatherReads(tbl, event.Isoform1, sample)
		iso2, obs2 := gatherReads(tbl, event.Isoform2, sample)

		c := ClassifySample(iso1, iso2, nJunctions, opts)
		if opts.Debug {
			log.Debug.Printf("event %s: sample %s: iso1=%v iso2=%v -> %s", event.ID, sample, iso1, iso2, c.Case)
		}
		if c.Case == CaseUnclassified {
			// Should be unreachable; exclude the sample rather than let it
			// produce a wrong ratio.
			stats.UnclassifiedSamples++
			log.Error.Printf("event %s: sample %s: unclassified read pattern iso1=%v iso2=%v", event.ID, sample, iso1, iso2)
			continue
		}
		if !c.Accepted() {
			stats.RejectedSamples++
			continue
		}
		stats.AcceptedSamples++
		iso1BySample[sample] = obs1
		iso2BySample[sample] = obs2
	}

	reduced1 := reduceIsoform(iso1BySample, len(event.Isoform1), opts.Method)
	reduced2 := reduceIsoform(iso2BySample, len(event.Isoform2), opts.Method)

	// Outer-align the two reduced maps, filling a missing side with zero,
	// then drop samples carrying the negative insufficient-reads sentinel.
	psis := map[string]float64{}
	for sample := range reduced1 {
		computeSamplePSI(psis, sample, reduced1, reduced2)
	}
	for sample := range reduced2 {
		if _, ok := reduced1[sample]; !ok {
			computeSamplePSI(psis, sample, reduced1, reduced2)
		}
	}
	if len(psis) == 0 {
		return nil, nil
	}
	return psis, nil
}

func computeSamplePSI(psis map[string]float64, sample string, reduced1, reduced2 map[string]float64) {
	v1 := reduced1[sample]
	v2 := reduced2[sample]
	if v1 < 0 || v2 < 0 {
		return
	}
	// Both isoforms reduced to zero: PSI is undefined for the sample, not
	// zero and not an error.
	if v1+v2 == 0 {
		return
	}
	psis[sample] = v2 / (v1 + v2)
}

// hasIllegalReads reports whether the sample carries at least minReads on
// any junction that contradicts the event's structure. Illegal junctions
// absent from the table count as unobserved.
func hasIllegalReads(event Event, tbl *ReadCountTable, sample string, minReads int) bool {
	for _, j := range event.Illegal {
		if c, ok := tbl.Get(j, sample); ok && c >= minReads {
			return true
		}
	}
	return false
}

// gatherReads slices the table to one sample's counts over the given
// junctions. iso is junction-aligned with zeros for unobserved entries
// and feeds the classifier; obs holds only the observed entries and
// feeds the reducer, which requires full junction coverage.
func gatherReads(tbl *ReadCountTable, junctions []string, sample string) (iso, obs []int) {
	iso = make([]int, len(junctions))
	obs = make([]int, 0, len(junctions))
	for i, j := range junctions {
		c, ok := tbl.Get(j, sample)
		if ok {
			iso[i] = c
			obs = append(obs, c)
		}
	}
	return iso, obs
}
