// Package eventtable loads splicing event annotation tables. An
// annotation is a CSV with one row per event; which columns name the
// isoform1, isoform2 and illegal junctions is configurable, so the same
// loader serves SE, MXE and similar event shapes.
package eventtable

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/splice/psi"
)

type Opts struct {
	// EventIDColumn names the unique event identifier column.
	EventIDColumn string
	// Isoform1Columns and Isoform2Columns list the junction-role columns
	// whose cell values name the junctions of each isoform, in order.
	Isoform1Columns []string
	Isoform2Columns []string
	// IllegalColumn names the optional column holding a pipe-separated
	// list of junctions incompatible with the event. Empty or "nan" cells
	// mean the event has none.
	IllegalColumn string
}

// DefaultOpts describes a skipped-exon (SE) annotation: isoform1 is the
// exon-skipping junction between exons 1 and 3, isoform2 the two
// exon-including junctions.
var DefaultOpts = Opts{
	EventIDColumn:   "event_id",
	Isoform1Columns: []string{"junction13"},
	Isoform2Columns: []string{"junction12", "junction23"},
	IllegalColumn:   "illegal_junctions",
}

// Read loads the annotation at path.
func Read(ctx context.Context, path string, opts Opts) ([]psi.Event, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	events, err := Parse(in.Reader(ctx), opts)
	if cerr := in.Close(ctx); err == nil {
		err = cerr
	}
	return events, err
}

// Parse reads an annotation CSV. Multiple physical rows may share one
// event id when they differ only in flanking-exon metadata; all such rows
// collapse to one logical event using the first row's junction mapping.
// Rows missing the event id or a junction cell are skipped with a
// diagnostic.
func Parse(r io.Reader, opts Opts) ([]psi.Event, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, errors.E(err, "parsing event annotation")
	}
	var events []psi.Event
	seen := map[string]bool{}
	for i, row := range rows {
		id := strings.TrimSpace(row[opts.EventIDColumn])
		if id == "" {
			log.Error.Printf("event annotation row %d: no %s value, skipping", i+1, opts.EventIDColumn)
			continue
		}
		if seen[id] {
			continue
		}
		iso1, err := junctionNames(row, opts.Isoform1Columns)
		if err == nil {
			var iso2 []string
			if iso2, err = junctionNames(row, opts.Isoform2Columns); err == nil {
				events = append(events, psi.Event{
					ID:       id,
					Isoform1: iso1,
					Isoform2: iso2,
					Illegal:  illegalNames(row[opts.IllegalColumn]),
				})
				seen[id] = true
				continue
			}
		}
		log.Error.Printf("event %s (row %d): %v, skipping", id, i+1, err)
	}
	return events, nil
}

func junctionNames(row map[string]string, columns []string) ([]string, error) {
	names := make([]string, 0, len(columns))
	for _, col := range columns {
		name := strings.TrimSpace(row[col])
		if name == "" {
			return nil, fmt.Errorf("no junction name in column %s", col)
		}
		names = append(names, name)
	}
	return names, nil
}

func illegalNames(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, "nan") {
		return nil
	}
	return strings.Split(cell, "|")
}
