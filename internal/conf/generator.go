package conf

import (
	"fmt"
	"os"
	"slices"

	"ecorpus/internal/corpus"
	"ecorpus/internal/flog"
)

// Generator configures the pseudorandom corpus shared by the writer and
// the streaming source.
type Generator struct {
	Uniform bool `yaml:"uniform" toml:"uniform"`

	// Key seeds the sequencer; 0 derives a key from KeyPhrase or the clock
	Key       uint32 `yaml:"key" toml:"key"`
	KeyPhrase string `yaml:"key_phrase" toml:"key_phrase"`

	// StartSkip draws are dropped once, Skip draws before every token
	StartSkip      uint32 `yaml:"start_skip" toml:"start_skip"`
	Skip           uint32 `yaml:"skip" toml:"skip"`
	SkipRandom     bool   `yaml:"skip_random" toml:"skip_random"`
	SkipRandomMask *Mask  `yaml:"skip_random_mask" toml:"skip_random_mask"`

	ByteList string `yaml:"byte_list" toml:"byte_list"`

	FilterFile string `yaml:"filter_file" toml:"filter_file"`
	FilterSkip uint32 `yaml:"filter_skip" toml:"filter_skip"`
	FilterMask *Mask  `yaml:"filter_mask" toml:"filter_mask"`

	// Sequencer names the PRNG: go, glibc
	Sequencer string `yaml:"sequencer" toml:"sequencer"`

	// MaxRetries bounds rejected draws per token; 0 retries forever
	MaxRetries uint32 `yaml:"max_retries" toml:"max_retries"`
}

func (g *Generator) setDefaults() {
	if g.SkipRandomMask == nil {
		m := Mask(0xFF)
		g.SkipRandomMask = &m
	}
	if g.FilterMask == nil {
		m := Mask(0xFF)
		g.FilterMask = &m
	}
	if g.Sequencer == "" {
		g.Sequencer = corpus.DefaultSequencer
	}
}

func (g *Generator) validate() []error {
	var errors []error

	if !slices.Contains(corpus.SequencerNames(), g.Sequencer) {
		errors = append(errors, fmt.Errorf("sequencer must be one of: %v", corpus.SequencerNames()))
	}
	if g.ByteList != "" {
		if _, err := os.Stat(g.ByteList); err != nil {
			errors = append(errors, fmt.Errorf("cannot open the byte_list: %s", g.ByteList))
		}
	}
	if g.FilterFile != "" {
		if _, err := os.Stat(g.FilterFile); err != nil {
			errors = append(errors, fmt.Errorf("cannot open the filter file: %s", g.FilterFile))
		}
	} else if g.FilterSkip != 0 {
		flog.Warnf("filter_skip is set but no filter_file is configured; it has no effect")
	}
	if g.KeyPhrase != "" && g.Key != 0 {
		flog.Warnf("both key and key_phrase are set; key_phrase is ignored")
	}

	return errors
}

// Policy converts the options into a generation policy. The key is copied
// as configured; NewSource resolves an unset key.
func (g *Generator) Policy() corpus.Policy {
	p := corpus.DefaultPolicy()
	p.Key = g.Key
	p.StartSkip = g.StartSkip
	p.Skip = g.Skip
	p.SkipRandom = g.SkipRandom
	if g.SkipRandomMask != nil {
		p.SkipRandomMask = byte(*g.SkipRandomMask)
	}
	p.Uniform = g.Uniform
	p.MaxRetries = g.MaxRetries
	return p
}

func (g *Generator) logProvided() {
	if g.Uniform {
		flog.Infof("uniform blocks enabled")
	}
	if g.Key != 0 {
		flog.Infof("key provided")
	} else if g.KeyPhrase != "" {
		flog.Infof("key phrase provided")
	}
	if g.ByteList != "" {
		flog.Infof("byte_list provided")
	}
	if g.StartSkip != 0 {
		flog.Infof("start_skip provided")
	}
	if g.Skip != 0 {
		flog.Infof("skip provided")
	}
	if g.SkipRandom {
		flog.Infof("skip_random enabled")
	}
	if g.FilterFile != "" {
		flog.Infof("filter_file provided")
	}
}

// NewSource opens the byte list and filter file and builds a seeded
// source. The returned close function releases the filter file.
func (g *Generator) NewSource(clock corpus.Clock) (*corpus.Source, func() error, error) {
	g.logProvided()

	alphabet := corpus.FullAlphabet()
	if g.ByteList != "" {
		f, err := os.Open(g.ByteList)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open the byte_list: %w", err)
		}
		alphabet, err = corpus.ReadAlphabet(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("byte_list %s: %w", g.ByteList, err)
		}
		flog.Infof("unique bytes count = %d", alphabet.Len())
	}

	closer := func() error { return nil }
	var filter *corpus.Filter
	if g.FilterFile != "" {
		f, err := os.Open(g.FilterFile)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open the filter file: %w", err)
		}
		mask := byte(0xFF)
		if g.FilterMask != nil {
			mask = byte(*g.FilterMask)
		}
		filter, err = corpus.NewFilter(f, g.FilterSkip, mask)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("filter file %s: %w", g.FilterFile, err)
		}
		closer = f.Close
	}

	p := g.Policy()
	p.Key = corpus.ResolveKey(g.Key, g.KeyPhrase, clock)
	flog.Debugf("seeding %s sequencer with key %d", g.Sequencer, p.Key)

	seq, err := corpus.NewSequencer(g.Sequencer, p.Key)
	if err != nil {
		closer()
		return nil, nil, err
	}
	src, err := corpus.NewSource(p, seq, alphabet, filter)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return src, closer, nil
}
