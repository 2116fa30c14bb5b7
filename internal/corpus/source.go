package corpus

import "fmt"

// Policy holds the generation knobs shared by the writer and the stream.
type Policy struct {
	Key            uint32
	StartSkip      uint32
	Skip           uint32
	SkipRandom     bool
	SkipRandomMask byte
	Uniform        bool

	// MaxRetries bounds consecutive rejected candidates for one token.
	// Zero means unbounded.
	MaxRetries uint32
}

func DefaultPolicy() Policy {
	return Policy{SkipRandomMask: 0xFF}
}

// Source runs the generation loop: skip burst, draw, alphabet gate,
// optional uniform cycling. It owns all mutable state of one run.
type Source struct {
	policy   Policy
	seq      Sequencer
	alphabet *Alphabet
	cycler   *Cycler
	filter   *Filter

	draws   uint64
	emitted uint64
}

// NewSource seeds seq with the policy key and applies the start skip. A
// nil alphabet means all 256 values; a nil filter disables filter skips.
func NewSource(p Policy, seq Sequencer, a *Alphabet, f *Filter) (*Source, error) {
	if seq == nil {
		seq = NewGoSequencer()
	}
	if a == nil {
		a = FullAlphabet()
	}
	if a.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}
	s := &Source{
		policy:   p,
		seq:      seq,
		alphabet: a,
		filter:   f,
	}
	if p.Uniform {
		s.cycler = NewCycler(a)
	}
	s.begin()
	return s, nil
}

func (s *Source) begin() {
	s.seq.Seed(s.policy.Key)
	s.draws = 0
	s.emitted = 0

	n := uint64(s.policy.StartSkip)
	if s.policy.SkipRandom {
		n += uint64(s.draw() & uint32(s.policy.SkipRandomMask))
	}
	s.discard(n)
}

func (s *Source) draw() uint32 {
	s.draws++
	return s.seq.Next()
}

func (s *Source) discard(n uint64) {
	for i := uint64(0); i < n; i++ {
		s.draw()
	}
}

// Next returns the next accepted corpus byte.
func (s *Source) Next() (byte, error) {
	var rejected uint32
	for {
		var skipf uint64
		if s.filter != nil {
			v, err := s.filter.Next()
			if err != nil {
				return 0, err
			}
			skipf = uint64(v)
		}
		var skipr uint64
		if s.policy.SkipRandom {
			skipr = uint64(s.draw() & uint32(s.policy.SkipRandomMask))
		}
		s.discard(skipr + skipf + uint64(s.policy.Skip))

		tok := byte(s.draw())
		if !s.alphabet.Contains(tok) || (s.cycler != nil && !s.cycler.Accept(tok)) {
			// termination relies on the alphabet being non-empty; it is probabilistic
			rejected++
			if s.policy.MaxRetries > 0 && rejected > s.policy.MaxRetries {
				return 0, fmt.Errorf("%w: %d rejections after %d tokens", ErrRetryLimit, rejected, s.emitted)
			}
			continue
		}
		s.emitted++
		return tok, nil
	}
}

// Reset returns the source to the state NewSource left it in.
func (s *Source) Reset() error {
	if s.cycler != nil {
		s.cycler.Reset()
	}
	if s.filter != nil {
		if err := s.filter.Reset(); err != nil {
			return err
		}
	}
	s.begin()
	return nil
}

func (s *Source) Alphabet() *Alphabet {
	return s.alphabet
}

func (s *Source) Policy() Policy {
	return s.policy
}

// Emitted is the number of tokens returned since the last reset.
func (s *Source) Emitted() uint64 {
	return s.emitted
}

// Draws is the number of sequencer draws since the last reset.
func (s *Source) Draws() uint64 {
	return s.draws
}
