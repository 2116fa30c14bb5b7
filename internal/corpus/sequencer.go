package corpus

import (
	"fmt"
	"math/rand"
	"sort"
)

// Sequencer is a seedable pseudorandom source. The same key must always
// reproduce the same sequence of Next values.
type Sequencer interface {
	// Name returns the registry identifier
	Name() string

	// Seed resets the generator state from key
	Seed(key uint32)

	// Next returns the next raw draw; callers mask the bits they need
	Next() uint32
}

// NewSequencerFunc constructs an unseeded sequencer
type NewSequencerFunc func() Sequencer

// Registry maps sequencer names to constructor functions
var Registry = map[string]NewSequencerFunc{
	"go":    NewGoSequencer,
	"glibc": NewGlibcSequencer,
}

// DefaultSequencer is used when no sequencer is configured
const DefaultSequencer = "go"

// NewSequencer creates a sequencer by name and seeds it with key
func NewSequencer(name string, key uint32) (Sequencer, error) {
	if name == "" {
		name = DefaultSequencer
	}
	fn, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown sequencer %q (known: %v)", name, SequencerNames())
	}
	s := fn()
	s.Seed(key)
	return s, nil
}

func SequencerNames() []string {
	names := make([]string, 0, len(Registry))
	for n := range Registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GoSequencer draws from the standard math/rand source.
type GoSequencer struct {
	r *rand.Rand
}

func NewGoSequencer() Sequencer {
	return &GoSequencer{}
}

func (s *GoSequencer) Name() string {
	return "go"
}

func (s *GoSequencer) Seed(key uint32) {
	s.r = rand.New(rand.NewSource(int64(key)))
}

func (s *GoSequencer) Next() uint32 {
	return uint32(s.r.Int31())
}

// GlibcSequencer reproduces glibc srandom/random (TYPE_3: additive feedback,
// degree 31, separation 3). Corpora built with it match the C tools.
type GlibcSequencer struct {
	r    [glibcDeg]int32
	f, b int
}

const (
	glibcDeg    = 31
	glibcSep    = 3
	glibcWarmup = 10 * glibcDeg
)

func NewGlibcSequencer() Sequencer {
	return &GlibcSequencer{}
}

func (s *GlibcSequencer) Name() string {
	return "glibc"
}

func (s *GlibcSequencer) Seed(key uint32) {
	seed := int32(key)
	if seed == 0 {
		seed = 1
	}
	s.r[0] = seed
	word := seed
	for i := 1; i < glibcDeg; i++ {
		// 16807 * word % 2147483647 without overflowing 31 bits (Schrage)
		hi := word / 127773
		lo := word % 127773
		word = 16807*lo - 2836*hi
		if word < 0 {
			word += 2147483647
		}
		s.r[i] = word
	}
	s.f = glibcSep
	s.b = 0
	for i := 0; i < glibcWarmup; i++ {
		s.Next()
	}
}

func (s *GlibcSequencer) Next() uint32 {
	v := uint32(s.r[s.f]) + uint32(s.r[s.b])
	s.r[s.f] = int32(v)
	s.f++
	if s.f >= glibcDeg {
		s.f = 0
	}
	s.b++
	if s.b >= glibcDeg {
		s.b = 0
	}
	return v >> 1
}
