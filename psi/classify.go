package psi

import "fmt"

// Classification is the outcome of classifying one sample's junction
// reads for an event. On acceptance Isoform1 and Isoform2 hold the reads
// kept for the PSI ratio; on rejection both are nil. Case always records
// which rule fired, in the form "Case N: ...".
type Classification struct {
	Isoform1 []int
	Isoform2 []int
	Case     string
}

func (c Classification) Accepted() bool { return c.Isoform1 != nil }

// CaseUnclassified marks a read pattern that matched none of the
// classifier rules. It should be unreachable for well-formed events and
// is surfaced as a defect signal rather than silently dropped.
const CaseUnclassified = "Case ???"

type ruleOutcome int

const (
	ruleAccept ruleOutcome = iota
	ruleReject
	// ruleCheckTotal defers to maybeSufficientReads: accept iff the summed
	// reads of both isoforms clear MinReads per junction in aggregate.
	ruleCheckTotal
)

type rule struct {
	label   string
	outcome ruleOutcome
	// letters picks the "option X" suffix pair used when outcome is
	// ruleCheckTotal: first letter on accept, second on reject.
	letters string
	match   func(iso1, iso2 []int, minReads int) bool
}

// classifierRules is evaluated top to bottom with first-match-wins
// semantics. The order is part of the scientific contract: perfect and
// clean signals are accepted outright, partial signals are rescued only
// if aggregate read depth clears the bar, and everything else is
// rejected. Rule 10 is unreachable because rule 9c's condition already
// covers it; it is kept so the precedence stays auditable.
var classifierRules = []rule{
	{
		label:   "Case 1: Perfect exclusion",
		outcome: ruleAccept,
		match: func(iso1, iso2 []int, minReads int) bool {
			return allAtLeast(iso1, minReads) && allZero(iso2)
		},
	},
	{
		label:   "Case 2: Perfect inclusion",
		outcome: ruleAccept,
		match: func(iso1, iso2 []int, minReads int) bool {
			return allZero(iso1) && allAtLeast(iso2, minReads)
		},
	},
	{
		label:   "Case 3: Sufficient coverage on both isoforms",
		outcome: ruleAccept,
		match: func(iso1, iso2 []int, minReads int) bool {
			return allAtLeast(iso1, minReads) && allAtLeast(iso2, minReads)
		},
	},
	{
		label:   "Case 4: Any observed junction is zero and it's not all of one isoform",
		outcome: ruleReject,
		match: func(iso1, iso2 []int, minReads int) bool {
			return anyZero(iso1) || anyZero(iso2)
		},
	},
	{
		label:   "Case 5: Isoform1 totally covered and isoform2 not",
		outcome: ruleCheckTotal,
		letters: "ab",
		match: func(iso1, iso2 []int, minReads int) bool {
			return allAtLeast(iso1, minReads) && allBelow(iso2, minReads)
		},
	},
	{
		label:   "Case 6: Isoform2 is totally covered and isoform1 is not",
		outcome: ruleCheckTotal,
		letters: "ab",
		match: func(iso1, iso2 []int, minReads int) bool {
			return allBelow(iso1, minReads) && allAtLeast(iso2, minReads)
		},
	},
	{
		label:   "Case 7: Isoform 1 is fully covered and isoform2 is questionable",
		outcome: ruleCheckTotal,
		letters: "ab",
		match: func(iso1, iso2 []int, minReads int) bool {
			return allAtLeast(iso1, minReads) && anyBelow(iso2, minReads)
		},
	},
	{
		label:   "Case 8: Isoform1 is questionable and isoform2 is fully covered",
		outcome: ruleCheckTotal,
		letters: "ab",
		match: func(iso1, iso2 []int, minReads int) bool {
			return anyBelow(iso1, minReads) && allAtLeast(iso2, minReads)
		},
	},
	{
		label:   "Case 9a: 3 junctions have less than minimum reads (2 on iso1 and 1 on iso2)",
		outcome: ruleReject,
		match: func(iso1, iso2 []int, minReads int) bool {
			return allBelow(iso1, minReads) && anyBelow(iso2, minReads)
		},
	},
	{
		label:   "Case 9b: 3 junctions have less than minimum reads (2 on iso2 and one on iso1)",
		outcome: ruleReject,
		match: func(iso1, iso2 []int, minReads int) bool {
			return anyBelow(iso1, minReads) && allBelow(iso2, minReads)
		},
	},
	{
		label:   "Case 9: Insufficient reads somehow",
		outcome: ruleCheckTotal,
		letters: "cd",
		match: func(iso1, iso2 []int, minReads int) bool {
			return anyBelow(iso1, minReads) || anyBelow(iso2, minReads)
		},
	},
	{
		label:   "Case 10: isoform1 and isoform2 don't have sufficient reads",
		outcome: ruleReject,
		match: func(iso1, iso2 []int, minReads int) bool {
			return anyBelow(iso1, minReads) || anyBelow(iso2, minReads)
		},
	},
}

// ClassifySample decides whether one sample's reads are usable for the
// event's PSI ratio. nJunctions is the event's total junction count
// (len(iso1)+len(iso2) with every junction observed).
//
// The uneven coverage check runs first and short-circuits the rule table.
func ClassifySample(iso1, iso2 []int, nJunctions int, opts Opts) Classification {
	if unevenCoverage(iso1, opts.UnevenCoverageMultiplier) ||
		unevenCoverage(iso2, opts.UnevenCoverageMultiplier) {
		return Classification{Case: "Case 0: Unequal read coverage"}
	}
	for _, r := range classifierRules {
		if !r.match(iso1, iso2, opts.MinReads) {
			continue
		}
		switch r.outcome {
		case ruleAccept:
			return Classification{Isoform1: iso1, Isoform2: iso2, Case: r.label}
		case ruleReject:
			return Classification{Case: r.label}
		default:
			return maybeSufficientReads(iso1, iso2, nJunctions, opts.MinReads, r.label, r.letters)
		}
	}
	return Classification{Case: CaseUnclassified}
}

// unevenCoverage reports whether one junction of the isoform is covered
// more than multiplier times deeper than the other. An isoform with a
// single junction can never be uneven. Only the first two junctions are
// compared; isoforms with more than two junctions are not fully
// supported.
func unevenCoverage(isoform []int, multiplier int) bool {
	if len(isoform) < 2 {
		return false
	}
	a, b := isoform[0], isoform[1]
	if a > b && a > multiplier*b {
		return true
	}
	if b > a && b > multiplier*a {
		return true
	}
	return false
}

// maybeSufficientReads rescues a partially covered sample if the summed
// reads of both isoforms reach minReads per junction in aggregate. The
// case label gets an "option" suffix recording which way it went.
func maybeSufficientReads(iso1, iso2 []int, nJunctions, minReads int, label, letters string) Classification {
	if sum(iso1)+sum(iso2) >= minReads*nJunctions {
		return Classification{
			Isoform1: iso1,
			Isoform2: iso2,
			Case:     fmt.Sprintf("%s, option %c: There are sufficient junction reads", label, letters[0]),
		}
	}
	return Classification{
		Case: fmt.Sprintf("%s, option %c: There are insufficient junction reads", label, letters[1]),
	}
}

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

func allAtLeast(xs []int, min int) bool {
	for _, x := range xs {
		if x < min {
			return false
		}
	}
	return true
}

func allBelow(xs []int, min int) bool {
	for _, x := range xs {
		if x >= min {
			return false
		}
	}
	return true
}

func anyBelow(xs []int, min int) bool {
	for _, x := range xs {
		if x < min {
			return true
		}
	}
	return false
}

func allZero(xs []int) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

func anyZero(xs []int) bool {
	for _, x := range xs {
		if x == 0 {
			return true
		}
	}
	return false
}
