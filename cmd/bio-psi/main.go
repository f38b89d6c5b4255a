package main

// bio-psi computes a (sample x event) table of percent-spliced-in values
// from a splicing event annotation and a junction read count table.
//
// Example:
//
//    bio-psi -events events.csv -reads sj_reads.csv -output psi.tsv
//
// The event annotation defaults to the skipped-exon column layout
// (junction13 vs junction12,junction23); use -isoform1-columns and
// -isoform2-columns for other event shapes.

import (
	"context"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/splice/encoding/eventtable"
	"github.com/grailbio/splice/encoding/readcounts"
	"github.com/grailbio/splice/psi"
)

type psiFlags struct {
	eventsPath      string
	readsPath       string
	outputPath      string
	summaryPath     string
	method          string
	isoform1Columns string
	isoform2Columns string
}

func main() {
	opts := psi.DefaultOpts
	flags := psiFlags{}
	eventOpts := eventtable.DefaultOpts
	readOpts := readcounts.DefaultOpts

	flag.StringVar(&flags.eventsPath, "events", "", "CSV of splicing event definitions. Required.")
	flag.StringVar(&flags.readsPath, "reads", "", "CSV of junction read counts, one row per (junction, sample). Required.")
	flag.StringVar(&flags.outputPath, "output", "", "TSV file for the PSI table. (default stdout)")
	flag.StringVar(&flags.summaryPath, "summary-output", "", "If set, write per-event PSI summary statistics to this TSV file.")
	flag.StringVar(&flags.method, "method", string(psi.DefaultOpts.Method), `Isoform read reduction method: "mean" or "min".`)
	flag.IntVar(&opts.MinReads, "min-reads", psi.DefaultOpts.MinReads,
		"Minimum number of reads at a junction for it to count as covered.")
	flag.IntVar(&opts.UnevenCoverageMultiplier, "uneven-coverage-multiplier", psi.DefaultOpts.UnevenCoverageMultiplier,
		"Reject a sample when one junction of an isoform has this many times more reads than the other.")
	flag.IntVar(&opts.Parallelism, "jobs", 0, "Number of parallel workers. 0 uses all cores; 1 forces sequential execution.")
	flag.BoolVar(&opts.Debug, "debug", false, "Trace per-event, per-sample classification decisions. Does not change results.")
	flag.StringVar(&eventOpts.EventIDColumn, "event-id-column", eventOpts.EventIDColumn, "Event id column in the annotation.")
	flag.StringVar(&flags.isoform1Columns, "isoform1-columns", strings.Join(eventOpts.Isoform1Columns, ","),
		"Comma-separated annotation columns naming the isoform1 (exclusion) junctions.")
	flag.StringVar(&flags.isoform2Columns, "isoform2-columns", strings.Join(eventOpts.Isoform2Columns, ","),
		"Comma-separated annotation columns naming the isoform2 (inclusion) junctions.")
	flag.StringVar(&eventOpts.IllegalColumn, "illegal-column", eventOpts.IllegalColumn,
		"Annotation column with a |-separated list of junctions incompatible with the event.")
	flag.StringVar(&readOpts.JunctionColumn, "junction-column", readOpts.JunctionColumn, "Junction id column in the read count table.")
	flag.StringVar(&readOpts.SampleColumn, "sample-column", readOpts.SampleColumn, "Sample id column in the read count table.")
	flag.StringVar(&readOpts.ReadsColumn, "reads-column", readOpts.ReadsColumn, "Read count column in the read count table.")

	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	if flags.eventsPath == "" || flags.readsPath == "" {
		log.Panicf("both -events and -reads must be set")
	}
	opts.Method = psi.Method(flags.method)
	eventOpts.Isoform1Columns = strings.Split(flags.isoform1Columns, ",")
	eventOpts.Isoform2Columns = strings.Split(flags.isoform2Columns, ",")

	events, err := eventtable.Read(ctx, flags.eventsPath, eventOpts)
	if err != nil {
		log.Panicf("read %s: %v", flags.eventsPath, err)
	}
	log.Printf("Read %d events from %s", len(events), flags.eventsPath)
	tbl, err := readcounts.Read(ctx, flags.readsPath, readOpts)
	if err != nil {
		log.Panicf("read %s: %v", flags.readsPath, err)
	}
	log.Printf("Read counts for %d samples from %s", len(tbl.Samples()), flags.readsPath)

	table, stats, err := psi.Calculate(events, tbl, opts)
	if err != nil {
		log.Panicf("calculate psi: %v", err)
	}
	log.Printf("Stats: %+v", stats)

	writeTable(ctx, flags.outputPath, table.WriteTSV)
	if flags.summaryPath != "" {
		writeTable(ctx, flags.summaryPath, table.WriteSummaryTSV)
	}
}

// writeTable writes one TSV to path, or to stdout when path is empty.
func writeTable(ctx context.Context, path string, write func(io.Writer) error) {
	if path == "" {
		if err := write(os.Stdout); err != nil {
			log.Panicf("write stdout: %v", err)
		}
		return
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		log.Panicf("create %s: %v", path, err)
	}
	if err := write(out.Writer(ctx)); err != nil {
		log.Panicf("write %s: %v", path, err)
	}
	if err := out.Close(ctx); err != nil {
		log.Panicf("close %s: %v", path, err)
	}
	log.Printf("Wrote %s", path)
}
