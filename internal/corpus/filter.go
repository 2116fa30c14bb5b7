package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Filter turns an auxiliary file into extra skip counts. Each step
// consumes two bytes: the first is dropped, the second is masked and
// returned. At end of file the reader goes back to just past the
// initial skip.
type Filter struct {
	rs   io.ReadSeeker
	br   *bufio.Reader
	skip uint32
	mask byte
}

func NewFilter(rs io.ReadSeeker, skip uint32, mask byte) (*Filter, error) {
	f := &Filter{
		rs:   rs,
		br:   bufio.NewReader(rs),
		skip: skip,
		mask: mask,
	}
	if err := f.discardSkip(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Filter) discardSkip() error {
	n, err := f.br.Discard(int(f.skip))
	if uint32(n) < f.skip {
		if err == nil || errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %d of %d bytes", ErrFilterShort, n, f.skip)
		}
		return fmt.Errorf("failed to skip filter bytes: %w", err)
	}
	return nil
}

// Reset puts the reader back at the position it had after NewFilter.
func (f *Filter) Reset() error {
	if _, err := f.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind filter file: %w", err)
	}
	f.br.Reset(f.rs)
	return f.discardSkip()
}

// Next returns the next masked skip count.
func (f *Filter) Next() (uint32, error) {
	_, err := f.br.ReadByte()
	if errors.Is(err, io.EOF) {
		if err := f.Reset(); err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, fmt.Errorf("failed to read filter file: %w", err)
	}

	c, err := f.br.ReadByte()
	if errors.Is(err, io.EOF) {
		// an odd trailing byte leaves nothing to pair with; stdio hands back EOF (all bits set)
		return uint32(0xFF & f.mask), nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read filter file: %w", err)
	}
	return uint32(c & f.mask), nil
}
