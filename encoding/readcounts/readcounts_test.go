package readcounts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCounts = `junction_id,sample_id,reads
chr1:100-200,sampleA,25
chr1:300-500,sampleA,0
chr1:100-200,sampleB,7
`

func TestParse(t *testing.T) {
	tbl, err := Parse(strings.NewReader(testCounts), DefaultOpts)
	require.NoError(t, err)
	assert.Equal(t, []string{"sampleA", "sampleB"}, tbl.Samples())

	c, ok := tbl.Get("chr1:100-200", "sampleA")
	assert.True(t, ok)
	assert.Equal(t, 25, c)

	// A recorded zero is an observation, not a missing entry.
	c, ok = tbl.Get("chr1:300-500", "sampleA")
	assert.True(t, ok)
	assert.Equal(t, 0, c)

	_, ok = tbl.Get("chr1:300-500", "sampleB")
	assert.False(t, ok)
	assert.True(t, tbl.HasJunction("chr1:300-500"))
	assert.False(t, tbl.HasJunction("chrX:1-2"))
}

func TestParseCustomColumns(t *testing.T) {
	in := "jxn,cell,n\nj1,s1,4\n"
	tbl, err := Parse(strings.NewReader(in), Opts{JunctionColumn: "jxn", SampleColumn: "cell", ReadsColumn: "n"})
	require.NoError(t, err)
	c, ok := tbl.Get("j1", "s1")
	assert.True(t, ok)
	assert.Equal(t, 4, c)
}

func TestParseBadCounts(t *testing.T) {
	_, err := Parse(strings.NewReader("junction_id,sample_id,reads\nj1,s1,lots\n"), DefaultOpts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad reads value")

	_, err = Parse(strings.NewReader("junction_id,sample_id,reads\nj1,s1,-3\n"), DefaultOpts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative read count")

	_, err = Parse(strings.NewReader("junction_id,sample_id,reads\nj1,,5\n"), DefaultOpts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
