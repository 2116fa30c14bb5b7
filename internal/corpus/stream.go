package corpus

import "fmt"

// Stream exposes a Source as an unbounded corpus whose logical position
// starts at index start. It never materializes the bytes it walks past.
type Stream struct {
	src   *Source
	start uint64
	pos   uint64
}

// NewStream pulls start+1 tokens so the stream sits on corpus[start], the
// same place a materialized decode begins from.
func NewStream(src *Source, start uint64) (*Stream, error) {
	s := &Stream{src: src, start: start}
	if err := s.seek(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stream) seek() error {
	for i := uint64(0); i <= s.start; i++ {
		if _, err := s.src.Next(); err != nil {
			return fmt.Errorf("failed to reach stream start %d: %w", s.start, err)
		}
	}
	s.pos = s.start
	return nil
}

// Next advances one token and returns it.
func (s *Stream) Next() (byte, error) {
	b, err := s.src.Next()
	if err != nil {
		return 0, err
	}
	s.pos++
	return b, nil
}

// Advance moves distance tokens ahead and returns the last one.
func (s *Stream) Advance(distance uint64) (byte, error) {
	var b byte
	for i := uint64(0); i < distance; i++ {
		var err error
		if b, err = s.Next(); err != nil {
			return 0, err
		}
	}
	return b, nil
}

// Rewind regenerates the stream from its seed back to start.
func (s *Stream) Rewind() error {
	if err := s.src.Reset(); err != nil {
		return err
	}
	return s.seek()
}

// Position is the corpus index of the most recent token.
func (s *Stream) Position() uint64 {
	return s.pos
}
