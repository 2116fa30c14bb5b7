package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterSeq returns key, key+1, key+2, ... so tests can see exactly
// which draws were skipped.
type counterSeq struct {
	n uint32
}

func (s *counterSeq) Name() string    { return "counter" }
func (s *counterSeq) Seed(key uint32) { s.n = key }

func (s *counterSeq) Next() uint32 {
	v := s.n
	s.n++
	return v
}

// constSeq always draws the same value.
type constSeq struct {
	v uint32
}

func (s *constSeq) Name() string { return "const" }
func (s *constSeq) Seed(uint32)  {}
func (s *constSeq) Next() uint32 { return s.v }

func TestGlibcSequencerMatchesLibc(t *testing.T) {
	s, err := NewSequencer("glibc", 1)
	require.NoError(t, err)

	// srandom(1); random() x5 on glibc
	want := []uint32{1804289383, 846930886, 1681692777, 1714636915, 1957747793}
	for i, w := range want {
		assert.Equal(t, w, s.Next(), "draw %d", i)
	}
}

func TestGlibcSequencerZeroSeedActsAsOne(t *testing.T) {
	a, _ := NewSequencer("glibc", 0)
	b, _ := NewSequencer("glibc", 1)
	for i := 0; i < 100; i++ {
		require.Equal(t, b.Next(), a.Next())
	}
}

func TestSequencersAreDeterministic(t *testing.T) {
	for _, name := range SequencerNames() {
		t.Run(name, func(t *testing.T) {
			a, err := NewSequencer(name, 2041)
			require.NoError(t, err)
			b, err := NewSequencer(name, 2041)
			require.NoError(t, err)

			first := make([]uint32, 64)
			for i := range first {
				first[i] = a.Next()
				require.Equal(t, first[i], b.Next())
			}

			a.Seed(2041)
			for i := range first {
				assert.Equal(t, first[i], a.Next(), "reseeded draw %d", i)
			}

			c, _ := NewSequencer(name, 2042)
			differ := false
			for i := range first {
				if c.Next() != first[i] {
					differ = true
				}
			}
			assert.True(t, differ, "different keys produced the same sequence")
		})
	}
}

func TestNewSequencerUnknown(t *testing.T) {
	_, err := NewSequencer("mt19937", 1)
	assert.Error(t, err)

	s, err := NewSequencer("", 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultSequencer, s.Name())
}
