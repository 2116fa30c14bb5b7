package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Writer materializes a bounded corpus.
type Writer struct {
	src *Source
}

func NewWriter(src *Source) *Writer {
	return &Writer{src: src}
}

// Generate writes n corpus bytes to out and returns the tally with its
// quality report. An alphabet value missing from the output yields an
// error wrapping ErrCoverage; the bytes have been written by then.
func (w *Writer) Generate(out io.Writer, n uint32) (*Counts, Report, error) {
	if n == 0 {
		return nil, Report{}, errors.New("corpus size must be greater than zero")
	}
	bw := bufio.NewWriter(out)
	counts := &Counts{}
	for i := uint32(0); i < n; i++ {
		tok, err := w.src.Next()
		if err != nil {
			return counts, Report{}, fmt.Errorf("token %d: %w", i, err)
		}
		if err := bw.WriteByte(tok); err != nil {
			return counts, Report{}, fmt.Errorf("failed to write corpus: %w", err)
		}
		counts.Add(tok)
	}
	if err := bw.Flush(); err != nil {
		return counts, Report{}, fmt.Errorf("failed to write corpus: %w", err)
	}

	report := Validate(counts, w.src.Alphabet())
	return counts, report, report.CoverageError(n)
}
