package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Corpus is the cursor a decoder walks: a Buffer or a Stream.
type Corpus interface {
	// Advance moves the cursor distance bytes ahead and returns the byte there
	Advance(distance uint64) (byte, error)

	// Rewind moves the cursor back to the configured start
	Rewind() error
}

type decodeState int

const (
	stateReadFirst decodeState = iota
	stateAccumulateEscape
	stateReadRemainder
	stateResolve
	stateWrap
)

// escapeUnit is the weight of each non-zero byte in an escape run.
const escapeUnit = 255

type Stats struct {
	Tokens uint64
	Bytes  uint64
	Wraps  uint64
}

// Decoder turns distance tokens back into corpus bytes.
//
// A token is one of:
//
//	d            d != 0: distance d
//	0 0          wrap: cursor back to start, no output
//	0 d... 0 r   distance 255*sum(d) + r, the run of non-zero d ends at the zero
type Decoder struct {
	c Corpus
}

func NewDecoder(c Corpus) *Decoder {
	return &Decoder{c: c}
}

// Decode reads tokens from r until end of input and writes one byte per
// resolved token to w. Input ending inside a token returns ErrTruncated.
func (d *Decoder) Decode(r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	state := stateReadFirst
	var distance uint64
	var next byte

	for {
		switch state {
		case stateReadFirst:
			b, err := br.ReadByte()
			if errors.Is(err, io.EOF) {
				return st, flush(bw, st)
			}
			if err != nil {
				return st, fmt.Errorf("failed to read input: %w", err)
			}
			st.Tokens++
			if b != 0 {
				distance = uint64(b)
				state = stateResolve
				continue
			}
			if next, err = readIn(br); err != nil {
				return st, truncated(bw, st, err)
			}
			if next == 0 {
				state = stateWrap
				continue
			}
			distance = 0
			state = stateAccumulateEscape

		case stateAccumulateEscape:
			var err error
			for next != 0 {
				distance += escapeUnit * uint64(next)
				if next, err = readIn(br); err != nil {
					return st, truncated(bw, st, err)
				}
			}
			state = stateReadRemainder

		case stateReadRemainder:
			rem, err := readIn(br)
			if err != nil {
				return st, truncated(bw, st, err)
			}
			distance += uint64(rem)
			state = stateResolve

		case stateResolve:
			b, err := d.c.Advance(distance)
			if err != nil {
				_ = bw.Flush()
				return st, fmt.Errorf("token %d: %w", st.Tokens, err)
			}
			if err := bw.WriteByte(b); err != nil {
				return st, fmt.Errorf("failed to write output: %w", err)
			}
			st.Bytes++
			state = stateReadFirst

		case stateWrap:
			if err := d.c.Rewind(); err != nil {
				_ = bw.Flush()
				return st, fmt.Errorf("token %d: %w", st.Tokens, err)
			}
			st.Wraps++
			state = stateReadFirst
		}
	}
}

func readIn(br *bufio.Reader) (byte, error) {
	b, err := br.ReadByte()
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	return b, err
}

func truncated(bw *bufio.Writer, st Stats, err error) error {
	_ = bw.Flush()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: token %d", ErrTruncated, st.Tokens)
	}
	return err
}

func flush(bw *bufio.Writer, st Stats) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output after %d bytes: %w", st.Bytes, err)
	}
	return nil
}
