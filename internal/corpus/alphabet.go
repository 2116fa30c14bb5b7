package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Alphabet is the set of byte values a corpus may contain.
type Alphabet struct {
	set   [256]bool
	count int
}

// FullAlphabet permits every byte value.
func FullAlphabet() *Alphabet {
	a := &Alphabet{count: 256}
	for i := range a.set {
		a.set[i] = true
	}
	return a
}

// NewAlphabet builds an alphabet from the distinct values in b.
func NewAlphabet(b []byte) (*Alphabet, error) {
	a := &Alphabet{}
	for _, c := range b {
		a.add(c)
	}
	if a.count == 0 {
		return nil, ErrEmptyAlphabet
	}
	return a, nil
}

// ReadAlphabet builds an alphabet from the distinct values of a byte-list
// stream. Order and duplicates do not matter; reading stops once all 256
// values have been seen.
func ReadAlphabet(r io.Reader) (*Alphabet, error) {
	br := bufio.NewReader(r)
	a := &Alphabet{}
	for a.count < 256 {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read byte list: %w", err)
		}
		a.add(c)
	}
	if a.count == 0 {
		return nil, ErrEmptyAlphabet
	}
	return a, nil
}

func (a *Alphabet) add(c byte) {
	if !a.set[c] {
		a.set[c] = true
		a.count++
	}
}

func (a *Alphabet) Contains(b byte) bool {
	return a.set[b]
}

func (a *Alphabet) Len() int {
	return a.count
}

// Values returns the members in ascending order.
func (a *Alphabet) Values() []byte {
	vals := make([]byte, 0, a.count)
	for i, ok := range a.set {
		if ok {
			vals = append(vals, byte(i))
		}
	}
	return vals
}
