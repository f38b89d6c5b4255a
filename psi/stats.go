package psi

// Stats counts what happened during a PSI table build. One Stats is kept
// per worker and merged after the parallel phase.
type Stats struct {
	// Events is the number of distinct events processed.
	Events int
	// MalformedEvents counts events skipped because their definition was
	// unusable (overlapping isoforms, unknown junctions).
	MalformedEvents int
	// EmptyEvents counts events where no sample survived, so the event
	// contributes no column.
	EmptyEvents int
	// IllegalSamples counts (event, sample) pairs excluded because an
	// illegal junction carried enough reads to contradict the event.
	IllegalSamples int
	// AcceptedSamples and RejectedSamples count classifier outcomes over
	// all (event, sample) pairs.
	AcceptedSamples int
	RejectedSamples int
	// UnclassifiedSamples counts read patterns that matched no classifier
	// rule. Nonzero values indicate a defect.
	UnclassifiedSamples int
}

// Merge adds the field values of the two Stats objects and creates new Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Events += o.Events
	s.MalformedEvents += o.MalformedEvents
	s.EmptyEvents += o.EmptyEvents
	s.IllegalSamples += o.IllegalSamples
	s.AcceptedSamples += o.AcceptedSamples
	s.RejectedSamples += o.RejectedSamples
	s.UnclassifiedSamples += o.UnclassifiedSamples
	return s
}
