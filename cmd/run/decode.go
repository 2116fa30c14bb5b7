package run

import (
	"fmt"
	"io"
	"os"

	"ecorpus/internal/conf"
	"ecorpus/internal/corpus"
	"ecorpus/internal/flog"
)

func startDecode(cfg *conf.Conf) error {
	d := cfg.Decode

	var c corpus.Corpus
	if path, ok := d.StreamFile(); ok {
		flog.Infof("Decoding through stream %s (start %d)", path, d.Start)
		g, err := conf.LoadStreamFile(path)
		if err != nil {
			return err
		}
		src, closeSrc, err := g.NewSource(corpus.SystemClock)
		if err != nil {
			return err
		}
		defer closeSrc()
		st, err := corpus.NewStream(src, uint64(d.Start))
		if err != nil {
			return err
		}
		c = st
	} else {
		flog.Infof("Decoding through corpus %s (start %d)", d.Corpus, d.Start)
		m, err := corpus.OpenMapped(d.Corpus, uint64(d.Start))
		if err != nil {
			return err
		}
		defer m.Close()
		c = m
	}

	in, closeIn, err := openInput(d.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := createOutput(d.Output)
	if err != nil {
		return err
	}

	stats, decErr := corpus.NewDecoder(c).Decode(in, out)
	if err := closeOut(); err != nil && decErr == nil {
		decErr = fmt.Errorf("failed to close output: %w", err)
	}
	flog.Debugf("decoded %d tokens into %d bytes, %d wraps", stats.Tokens, stats.Bytes, stats.Wraps)
	return decErr
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open the input file: %w", err)
	}
	return f, f.Close, nil
}

func createOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create the output file: %w", err)
	}
	return f, f.Close, nil
}
