package psi

// ReadCountTable holds the number of junction-spanning reads observed for
// each (junction, sample) pair. A missing entry is distinct from a zero
// count: a zero was observed, a missing entry was not measured at all.
// Samples keep the order in which they were first added; that order
// becomes the row order of the PSI table.
type ReadCountTable struct {
	samples     []string
	sampleIndex map[string]int
	reads       map[string]map[string]int // junction -> sample -> count
}

func NewReadCountTable() *ReadCountTable {
	return &ReadCountTable{
		sampleIndex: map[string]int{},
		reads:       map[string]map[string]int{},
	}
}

// AddSample registers a sample id, keeping first-come order. Adding the
// same sample twice is a no-op.
func (t *ReadCountTable) AddSample(sample string) {
	if _, ok := t.sampleIndex[sample]; ok {
		return
	}
	t.sampleIndex[sample] = len(t.samples)
	t.samples = append(t.samples, sample)
}

// Add records the read count for one (junction, sample) pair, registering
// the sample if it is new. Adding the same pair twice overwrites.
func (t *ReadCountTable) Add(junction, sample string, count int) {
	t.AddSample(sample)
	m, ok := t.reads[junction]
	if !ok {
		m = map[string]int{}
		t.reads[junction] = m
	}
	m[sample] = count
}

// Samples returns all sample ids in first-come order. The returned slice
// must not be modified.
func (t *ReadCountTable) Samples() []string { return t.samples }

// HasJunction reports whether the junction exists in the table index.
func (t *ReadCountTable) HasJunction(junction string) bool {
	_, ok := t.reads[junction]
	return ok
}

// Get returns the read count for the (junction, sample) pair, and whether
// the pair was observed at all.
func (t *ReadCountTable) Get(junction, sample string) (int, bool) {
	c, ok := t.reads[junction][sample]
	return c, ok
}
