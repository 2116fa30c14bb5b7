package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.corpus")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	m, err := OpenMapped(path, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, m.Len())

	b, err := m.Advance(3)
	require.NoError(t, err)
	assert.Equal(t, byte('5'), b)
	assert.Equal(t, uint64(5), m.Position())

	require.NoError(t, m.Rewind())
	assert.Equal(t, uint64(2), m.Position())

	_, err = m.Advance(8)
	assert.ErrorIs(t, err, ErrOutOfRange)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}

func TestOpenMappedEmptyAndMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := OpenMapped(path, 0)
	require.NoError(t, err)
	_, err = m.Advance(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	require.NoError(t, m.Close())

	_, err = OpenMapped(filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}
