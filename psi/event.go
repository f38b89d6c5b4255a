package psi

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Event describes one alternative splicing event as sets of named splice
// junctions. Isoform1 is the exclusion (PSI=0) form and Isoform2 the
// inclusion (PSI=1) form, e.g. for an SE event Isoform1 is
// ["junction13"] and Isoform2 is ["junction12", "junction23"]. Illegal
// lists junctions that cannot carry reads if the event definition holds;
// a sample with illegal reads is dropped from the event.
type Event struct {
	ID       string
	Isoform1 []string
	Isoform2 []string
	Illegal  []string
}

// NJunctions returns the total number of legal junctions in the event.
// It is a property of the event definition, not of any one sample.
func (e Event) NJunctions() int { return len(e.Isoform1) + len(e.Isoform2) }

// validate reports whether the event is structurally usable against the
// given read count table: both isoforms must name at least one junction,
// the isoform junction sets must be disjoint, and every named junction
// must exist in the table index.
func (e Event) validate(tbl *ReadCountTable) error {
	if len(e.Isoform1) == 0 || len(e.Isoform2) == 0 {
		return errors.E(fmt.Sprintf("event %s: both isoforms must have at least one junction", e.ID))
	}
	seen := make(map[string]bool, len(e.Isoform1))
	for _, j := range e.Isoform1 {
		seen[j] = true
	}
	for _, j := range e.Isoform2 {
		if seen[j] {
			return errors.E(fmt.Sprintf("event %s: junction %s appears in both isoforms", e.ID, j))
		}
	}
	for _, j := range e.Isoform1 {
		if !tbl.HasJunction(j) {
			return errors.E(fmt.Sprintf("event %s: junction %s not found in the read count table", e.ID, j))
		}
	}
	for _, j := range e.Isoform2 {
		if !tbl.HasJunction(j) {
			return errors.E(fmt.Sprintf("event %s: junction %s not found in the read count table", e.ID, j))
		}
	}
	return nil
}
