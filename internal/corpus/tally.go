package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Tally counts byte values in r after discarding start bytes. With
// stopOn256 it returns as soon as every value has been seen once.
func Tally(r io.Reader, start uint64, stopOn256 bool) (*Counts, error) {
	br := bufio.NewReader(r)
	for i := uint64(0); i < start; i++ {
		if _, err := br.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %d", ErrShortInput, start)
			}
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}

	counts := &Counts{}
	seen := 0
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return counts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		counts.Add(c)
		if stopOn256 && counts[c] == 1 {
			seen++
			if seen == 256 {
				return counts, nil
			}
		}
	}
}

// WriteByteList writes each value with a non-zero count once, ascending.
// The output is a byte list usable as an alphabet source.
func WriteByteList(w io.Writer, c *Counts) (int, error) {
	list := make([]byte, 0, 256)
	for i, n := range c {
		if n > 0 {
			list = append(list, byte(i))
		}
	}
	return w.Write(list)
}
