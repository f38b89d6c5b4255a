package psi

// Method selects how the per-junction reads of one isoform are collapsed
// into a single value per sample.
type Method string

const (
	// MethodMean sums the junction reads and divides by the number of
	// junctions on the isoform.
	MethodMean Method = "mean"
	// MethodMin takes the smallest read count across the isoform's
	// junctions.
	MethodMin Method = "min"
)

type Opts struct {
	// MinReads is the minimum number of reads that must be observed at a
	// junction for it to count as covered.
	MinReads int
	// Method selects the isoform read reduction strategy.
	Method Method
	// UnevenCoverageMultiplier is the scale factor for the maximum amount
	// bigger one junction of an isoform can be before the sample is
	// rejected, e.g. for an SE event with junction12=40 and junction23=500,
	// the sample is rejected because 500 > 40*10.
	UnevenCoverageMultiplier int
	// Parallelism is the number of workers used when computing events.
	// <= 0 means use all cores. 1 forces sequential execution.
	Parallelism int
	// Debug enables verbose per-event, per-sample tracing. It has no
	// effect on computed results.
	Debug bool
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MinReads:                 10,
	Method:                   MethodMean,
	UnevenCoverageMultiplier: 10,
	Parallelism:              0,
	Debug:                    false,
}
