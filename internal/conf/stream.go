package conf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"ecorpus/internal/flog"
)

// LoadStreamFile reads a stream directive file: one option per line,
// optionally followed by its argument, e.g.
//
//	# corpus for the March drop
//	-uniform
//	-key 2041
//	-skip_random_mask 017
//
// Lines starting with # are comments. Options apply in file order;
// unknown options are ignored.
func LoadStreamFile(path string) (*Generator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the stream file: %w", err)
	}
	defer f.Close()

	g, err := ParseStream(f)
	if err != nil {
		return nil, fmt.Errorf("stream file %s: %w", path, err)
	}
	g.setDefaults()
	if err := writeErr(g.validate()); err != nil {
		return nil, fmt.Errorf("stream file %s: %w", path, err)
	}
	return g, nil
}

// ParseStream parses directives into a Generator without applying defaults.
func ParseStream(r io.Reader) (*Generator, error) {
	g := &Generator{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		if strings.HasPrefix(raw, "#") {
			continue
		}
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		opt, arg := text, ""
		if i := strings.IndexAny(text, " \t"); i >= 0 {
			opt, arg = text[:i], text[i+1:]
		}
		arg = strings.TrimSpace(arg)
		if err := g.apply(strings.TrimPrefix(opt, "-"), arg); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) apply(opt, arg string) error {
	need := func() error {
		if arg == "" {
			return fmt.Errorf("no -%s value given", opt)
		}
		return nil
	}
	num := func(dst *uint32) error {
		if err := need(); err != nil {
			return err
		}
		v, err := ParseUint32(arg)
		if err != nil {
			return fmt.Errorf("-%s %w", opt, err)
		}
		*dst = v
		return nil
	}
	mask := func(dst **Mask) error {
		if err := need(); err != nil {
			return err
		}
		v, err := ParseMask(arg)
		if err != nil {
			return fmt.Errorf("-%s %w", opt, err)
		}
		*dst = &v
		return nil
	}
	str := func(dst *string) error {
		if err := need(); err != nil {
			return err
		}
		*dst = arg
		return nil
	}

	switch opt {
	case "uniform":
		g.Uniform = true
	case "skip_random":
		g.SkipRandom = true
	case "key":
		return num(&g.Key)
	case "key_phrase":
		return str(&g.KeyPhrase)
	case "start_skip":
		return num(&g.StartSkip)
	case "skip":
		return num(&g.Skip)
	case "skip_random_mask":
		return mask(&g.SkipRandomMask)
	case "byte_list":
		return str(&g.ByteList)
	case "filter_file":
		return str(&g.FilterFile)
	case "filter_skip":
		return num(&g.FilterSkip)
	case "filter_mask":
		return mask(&g.FilterMask)
	case "sequencer":
		return str(&g.Sequencer)
	case "max_retries":
		return num(&g.MaxRetries)
	default:
		flog.Debugf("ignoring unknown stream option %q", opt)
	}
	return nil
}
