package corpus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, p Policy, a *Alphabet) *Source {
	t.Helper()
	s, err := NewSource(p, nil, a, nil)
	require.NoError(t, err)
	return s
}

func TestWriterUniformFullAlphabet(t *testing.T) {
	p := DefaultPolicy()
	p.Key = 11
	p.Uniform = true
	var buf bytes.Buffer

	counts, report, err := NewWriter(newTestSource(t, p, nil)).Generate(&buf, 512)
	require.NoError(t, err)
	assert.Equal(t, 512, buf.Len())
	for v, n := range counts {
		require.Equal(t, uint64(2), n, "value %d", v)
	}
	assert.Equal(t, 2.0, report.Mean)
	assert.Equal(t, 0.0, report.StdDev)
	assert.True(t, report.Covered())
}

func TestWriterCountsMatchOutput(t *testing.T) {
	a, err := NewAlphabet([]byte("0123456789"))
	require.NoError(t, err)
	p := DefaultPolicy()
	p.Key = 3
	p.Skip = 1
	var buf bytes.Buffer

	counts, report, err := NewWriter(newTestSource(t, p, a)).Generate(&buf, 5000)
	require.NoError(t, err)

	var recount Counts
	for _, b := range buf.Bytes() {
		require.True(t, a.Contains(b))
		recount.Add(b)
	}
	assert.Equal(t, recount, *counts)
	assert.Equal(t, uint64(5000), report.Total)
}

func TestWriterCoverageFailure(t *testing.T) {
	p := DefaultPolicy()
	p.Key = 1
	var buf bytes.Buffer

	_, _, err := NewWriter(newTestSource(t, p, nil)).Generate(&buf, 100)
	assert.ErrorIs(t, err, ErrCoverage)
	assert.Equal(t, 100, buf.Len(), "bytes are written before coverage is checked")
}

func TestWriterZeroSize(t *testing.T) {
	_, _, err := NewWriter(newTestSource(t, DefaultPolicy(), nil)).Generate(&bytes.Buffer{}, 0)
	assert.Error(t, err)
}

func TestWriterSameKeySameCorpus(t *testing.T) {
	p := DefaultPolicy()
	p.Key = 777
	p.StartSkip = 40
	p.SkipRandom = true
	p.SkipRandomMask = 0x07
	p.Uniform = true

	var a, b bytes.Buffer
	_, _, err := NewWriter(newTestSource(t, p, nil)).Generate(&a, 4096)
	require.NoError(t, err)
	_, _, err = NewWriter(newTestSource(t, p, nil)).Generate(&b, 4096)
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}
