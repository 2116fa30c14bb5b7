package corpus

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read past the byte list")
}

func TestReadAlphabetDistinct(t *testing.T) {
	a, err := ReadAlphabet(strings.NewReader("banana bread"))
	require.NoError(t, err)
	assert.Equal(t, []byte(" abdenr"), a.Values())
	assert.Equal(t, 7, a.Len())
	assert.True(t, a.Contains('n'))
	assert.False(t, a.Contains('z'))
}

func TestReadAlphabetEmpty(t *testing.T) {
	_, err := ReadAlphabet(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyAlphabet)

	_, err = NewAlphabet(nil)
	assert.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestReadAlphabetStopsAtFull(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(255 - i)
	}
	a, err := ReadAlphabet(io.MultiReader(bytes.NewReader(all), failingReader{}))
	require.NoError(t, err)
	assert.Equal(t, 256, a.Len())
}

func TestFullAlphabet(t *testing.T) {
	a := FullAlphabet()
	assert.Equal(t, 256, a.Len())
	assert.Len(t, a.Values(), 256)
}

func TestCyclerClearsAfterFullCycle(t *testing.T) {
	a, err := NewAlphabet([]byte{1, 2, 3})
	require.NoError(t, err)
	c := NewCycler(a)

	assert.True(t, c.Accept(1))
	assert.False(t, c.Accept(1))
	assert.True(t, c.Accept(2))
	assert.Equal(t, 2, c.Pending())
	assert.True(t, c.Accept(3))
	assert.Equal(t, 0, c.Pending(), "cycle should clear once every value is used")
	assert.True(t, c.Accept(1))
}
