// Package readcounts loads long-format junction read count tables: one
// CSV row per (junction, sample) pair with the number of junction-
// spanning reads observed.
package readcounts

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/splice/psi"
)

type Opts struct {
	// JunctionColumn and SampleColumn name the two index columns.
	JunctionColumn string
	SampleColumn   string
	// ReadsColumn names the numeric read count column.
	ReadsColumn string
}

var DefaultOpts = Opts{
	JunctionColumn: "junction_id",
	SampleColumn:   "sample_id",
	ReadsColumn:    "reads",
}

// Read loads the read count table at path.
func Read(ctx context.Context, path string, opts Opts) (*psi.ReadCountTable, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	tbl, err := Parse(in.Reader(ctx), opts)
	if cerr := in.Close(ctx); err == nil {
		err = cerr
	}
	return tbl, err
}

// Parse reads a long-format read count CSV. Unlike the event annotation,
// a broken row here is a structural failure: a count that cannot be read
// poisons every event touching its junction, so the whole load errors
// out.
func Parse(r io.Reader, opts Opts) (*psi.ReadCountTable, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, errors.E(err, "parsing read counts")
	}
	tbl := psi.NewReadCountTable()
	for i, row := range rows {
		junction := strings.TrimSpace(row[opts.JunctionColumn])
		sample := strings.TrimSpace(row[opts.SampleColumn])
		if junction == "" || sample == "" {
			return nil, errors.E(fmt.Sprintf("read counts row %d: missing %s or %s value",
				i+1, opts.JunctionColumn, opts.SampleColumn))
		}
		count, err := strconv.Atoi(strings.TrimSpace(row[opts.ReadsColumn]))
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("read counts row %d: bad %s value", i+1, opts.ReadsColumn))
		}
		if count < 0 {
			return nil, errors.E(fmt.Sprintf("read counts row %d: negative read count %d", i+1, count))
		}
		tbl.Add(junction, sample, count)
	}
	return tbl, nil
}
