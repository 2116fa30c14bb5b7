package run

import (
	"fmt"
	"os"

	"ecorpus/internal/conf"
	"ecorpus/internal/corpus"
	"ecorpus/internal/flog"
)

func startTally(cfg *conf.Conf) error {
	t := cfg.Tally

	in, closeIn, err := openInput(t.Input)
	if err != nil {
		return err
	}
	counts, err := corpus.Tally(in, uint64(t.Start), t.StopOn256)
	closeIn()
	if err != nil {
		return fmt.Errorf("%s: %w", t.Input, err)
	}

	observed := counts.Observed()
	if observed == nil {
		flog.Warnf("%s holds no bytes after offset %d", t.Input, t.Start)
		return nil
	}
	if t.StopOn256 && observed.Len() == 256 && !t.PrintBytes {
		flog.Infof("Found 256 values in %s", t.Input)
		return nil
	}

	if t.PrintBytes {
		path := t.ByteListPath()
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cannot open the output tally file: %w", err)
		}
		n, err := corpus.WriteByteList(f, counts)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		flog.Infof("wrote %d bytes to %s", n, path)
		return nil
	}

	report := corpus.Validate(counts, observed)
	if !t.PrintOutliers {
		report.Outliers = nil
	}
	report.Log()
	flog.Infof("unique byte count = %d", observed.Len())
	return nil
}
