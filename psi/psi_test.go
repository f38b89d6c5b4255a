package psi

import (
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

// testTable builds a ReadCountTable for an SE event with junctions j13
// (isoform1) and j12, j23 (isoform2).
func testTable(counts map[string]map[string]int) *ReadCountTable {
	tbl := NewReadCountTable()
	for _, j := range []string{"j13", "j12", "j23", "jx"} {
		for sample, c := range counts[j] {
			tbl.Add(j, sample, c)
		}
	}
	return tbl
}

var testEvent = Event{
	ID:       "event1",
	Isoform1: []string{"j13"},
	Isoform2: []string{"j12", "j23"},
}

func TestEventPSIInclusionExclusion(t *testing.T) {
	tbl := testTable(map[string]map[string]int{
		"j13": {"included": 0, "excluded": 30, "mixed": 20},
		"j12": {"included": 18, "excluded": 0, "mixed": 30},
		"j23": {"included": 22, "excluded": 0, "mixed": 10},
	})
	stats := Stats{}
	psis, err := EventPSI(testEvent, tbl, &stats, DefaultOpts)
	expect.NoError(t, err)
	// included: iso2 mean (18+22)/2 = 20, iso1 = 0 -> psi 1.
	// excluded: iso1 = 30, iso2 = 0 -> psi 0.
	// mixed: iso1 = 20, iso2 mean = 20 -> psi 0.5.
	expect.EQ(t, psis, map[string]float64{"included": 1.0, "excluded": 0.0, "mixed": 0.5})
	expect.EQ(t, stats.AcceptedSamples, 3)
}

func TestEventPSIMethodMin(t *testing.T) {
	tbl := testTable(map[string]map[string]int{
		"j13": {"s1": 10},
		"j12": {"s1": 30},
		"j23": {"s1": 10},
	})
	opts := DefaultOpts
	opts.Method = MethodMin
	psis, err := EventPSI(testEvent, tbl, &Stats{}, opts)
	expect.NoError(t, err)
	// iso2 min(30, 10) = 10, iso1 = 10 -> psi 0.5.
	expect.EQ(t, psis, map[string]float64{"s1": 0.5})
}

func TestEventPSIRejectedSampleAbsent(t *testing.T) {
	tbl := testTable(map[string]map[string]int{
		"j13": {"good": 30, "shallow": 4},
		"j12": {"good": 0, "shallow": 5},
		"j23": {"good": 0, "shallow": 3},
	})
	stats := Stats{}
	psis, err := EventPSI(testEvent, tbl, &stats, DefaultOpts)
	expect.NoError(t, err)
	expect.EQ(t, psis, map[string]float64{"good": 0.0})
	expect.EQ(t, stats.RejectedSamples, 1)
}

func TestEventPSIIllegalJunctionShortCircuit(t *testing.T) {
	event := testEvent
	event.Illegal = []string{"jx"}
	tbl := testTable(map[string]map[string]int{
		"j13": {"clean": 0, "tainted": 0},
		"j12": {"clean": 20, "tainted": 20},
		"j23": {"clean": 20, "tainted": 20},
		"jx":  {"tainted": 10},
	})
	stats := Stats{}
	psis, err := EventPSI(event, tbl, &stats, DefaultOpts)
	expect.NoError(t, err)
	// tainted would be a perfect inclusion but its illegal junction
	// coverage contradicts the event definition.
	expect.EQ(t, psis, map[string]float64{"clean": 1.0})
	expect.EQ(t, stats.IllegalSamples, 1)
}

func TestEventPSIIllegalBelowThresholdKept(t *testing.T) {
	event := testEvent
	event.Illegal = []string{"jx"}
	tbl := testTable(map[string]map[string]int{
		"j13": {"s1": 0},
		"j12": {"s1": 20},
		"j23": {"s1": 20},
		"jx":  {"s1": 9},
	})
	psis, err := EventPSI(event, tbl, &Stats{}, DefaultOpts)
	expect.NoError(t, err)
	expect.EQ(t, psis, map[string]float64{"s1": 1.0})
}

func TestEventPSIBothIsoformsZero(t *testing.T) {
	// With MinReads=0 an all-zero sample is accepted as a perfect
	// exclusion, then both isoforms reduce to zero. PSI must be absent,
	// not zero and not NaN.
	tbl := testTable(map[string]map[string]int{
		"j13": {"s1": 0},
		"j12": {"s1": 0},
		"j23": {"s1": 0},
	})
	opts := DefaultOpts
	opts.MinReads = 0
	psis, err := EventPSI(testEvent, tbl, &Stats{}, opts)
	expect.NoError(t, err)
	expect.EQ(t, len(psis), 0)
}

func TestEventPSIPartialJunctionSample(t *testing.T) {
	// s2 has no j23 entry at all. Its classifier input sees a zero there,
	// so it is rejected; it must not leak into the output zero-filled.
	tbl := testTable(map[string]map[string]int{
		"j13": {"s1": 0, "s2": 0},
		"j12": {"s1": 20, "s2": 20},
		"j23": {"s1": 20},
	})
	psis, err := EventPSI(testEvent, tbl, &Stats{}, DefaultOpts)
	expect.NoError(t, err)
	expect.EQ(t, psis, map[string]float64{"s1": 1.0})
}

func TestEventPSIUnevenCoverage(t *testing.T) {
	tbl := testTable(map[string]map[string]int{
		"j13": {"s1": 0},
		"j12": {"s1": 500},
		"j23": {"s1": 40},
	})
	psis, err := EventPSI(testEvent, tbl, &Stats{}, DefaultOpts)
	expect.NoError(t, err)
	expect.EQ(t, len(psis), 0)
}

func TestEventPSIMalformed(t *testing.T) {
	tbl := testTable(map[string]map[string]int{
		"j13": {"s1": 10},
		"j12": {"s1": 10},
		"j23": {"s1": 10},
	})
	overlapping := Event{ID: "bad", Isoform1: []string{"j13"}, Isoform2: []string{"j13", "j23"}}
	_, err := EventPSI(overlapping, tbl, &Stats{}, DefaultOpts)
	expect.NotNil(t, err)
	assert.HasSubstr(t, err.Error(), "appears in both isoforms")

	unknown := Event{ID: "bad2", Isoform1: []string{"nope"}, Isoform2: []string{"j12", "j23"}}
	_, err = EventPSI(unknown, tbl, &Stats{}, DefaultOpts)
	expect.NotNil(t, err)
	assert.HasSubstr(t, err.Error(), "not found in the read count table")

	empty := Event{ID: "bad3", Isoform1: nil, Isoform2: []string{"j12"}}
	_, err = EventPSI(empty, tbl, &Stats{}, DefaultOpts)
	expect.NotNil(t, err)
	assert.HasSubstr(t, err.Error(), "at least one junction")
}

func TestEventPSIDebugDoesNotChangeResults(t *testing.T) {
	tbl := testTable(map[string]map[string]int{
		"j13": {"s1": 0, "s2": 30},
		"j12": {"s1": 18, "s2": 0},
		"j23": {"s1": 22, "s2": 0},
	})
	base, err := EventPSI(testEvent, tbl, &Stats{}, DefaultOpts)
	expect.NoError(t, err)
	opts := DefaultOpts
	opts.Debug = true
	traced, err := EventPSI(testEvent, tbl, &Stats{}, opts)
	expect.NoError(t, err)
	expect.EQ(t, traced, base)
}

func TestEventPSICaseLabelFormat(t *testing.T) {
	// The case taxonomy is part of the tool's contract; spot-check the
	// option suffix wording end to end.
	c := ClassifySample([]int{12}, []int{3}, 2, DefaultOpts)
	expect.True(t, strings.HasSuffix(c.Case, "option b: There are insufficient junction reads"))
}
