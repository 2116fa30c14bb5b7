package run

import (
	"fmt"
	"os"

	"ecorpus/internal/conf"
	"ecorpus/internal/corpus"
	"ecorpus/internal/flog"
)

func startGenerate(cfg *conf.Conf) error {
	flog.Infof("Generating corpus %s (%d bytes)...", cfg.Corpus.Path, cfg.Corpus.Size)

	src, closeSrc, err := cfg.Generator.NewSource(corpus.SystemClock)
	if err != nil {
		return err
	}
	defer closeSrc()

	f, err := os.Create(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("cannot open the corpus: %w", err)
	}

	_, report, genErr := corpus.NewWriter(src).Generate(f, cfg.Corpus.Size)
	if err := f.Close(); err != nil && genErr == nil {
		genErr = fmt.Errorf("failed to close corpus: %w", err)
	}
	if genErr != nil {
		return genErr
	}

	report.Log()
	flog.Debugf("%d sequencer draws for %d tokens", src.Draws(), src.Emitted())
	return nil
}
