package conf

import (
	"fmt"
	"os"
	"strings"
)

// StreamPrefix marks a corpus specifier naming a stream directive file
// instead of a corpus file.
const StreamPrefix = "stream:"

// Corpus is the output of a generate job.
type Corpus struct {
	Path string `yaml:"path" toml:"path"`
	Size uint32 `yaml:"size" toml:"size"`
}

func (c *Corpus) validate() []error {
	var errors []error

	if c.Path == "" || c.Size == 0 {
		errors = append(errors, fmt.Errorf("corpus path and corpus size must both be set"))
	}

	return errors
}

// Decode maps a distance token file back through a corpus.
type Decode struct {
	// Corpus is a corpus file path or stream:<directive file>
	Corpus string `yaml:"corpus" toml:"corpus"`
	Input  string `yaml:"input" toml:"input"`
	Output string `yaml:"output" toml:"output"`
	Start  uint32 `yaml:"start" toml:"start"`
}

func (d *Decode) setDefaults() {
	if d.Input == "" {
		d.Input = "-"
	}
	if d.Output == "" {
		d.Output = "-"
	}
}

// StreamFile returns the directive file path when Corpus is a stream specifier.
func (d *Decode) StreamFile() (string, bool) {
	return strings.CutPrefix(d.Corpus, StreamPrefix)
}

func (d *Decode) validate() []error {
	var errors []error

	if d.Corpus == "" {
		errors = append(errors, fmt.Errorf("decode corpus is required"))
	} else if path, ok := d.StreamFile(); ok {
		if path == "" {
			errors = append(errors, fmt.Errorf("badly formed stream file: %s", d.Corpus))
		} else if _, err := os.Stat(path); err != nil {
			errors = append(errors, fmt.Errorf("cannot open the stream file: %s", path))
		}
	} else if _, err := os.Stat(d.Corpus); err != nil {
		errors = append(errors, fmt.Errorf("cannot read the corpus file: %s", d.Corpus))
	}
	if d.Input != "-" {
		if _, err := os.Stat(d.Input); err != nil {
			errors = append(errors, fmt.Errorf("cannot open the input file: %s", d.Input))
		}
	}

	return errors
}

// Tally counts byte values of a file.
type Tally struct {
	Input         string `yaml:"input" toml:"input"`
	Start         uint32 `yaml:"start" toml:"start"`
	StopOn256     bool   `yaml:"stop_on_256" toml:"stop_on_256"`
	PrintBytes    bool   `yaml:"print_bytes" toml:"print_bytes"`
	PrintOutliers bool   `yaml:"print_outliers" toml:"print_outliers"`
}

// ByteListPath is where PrintBytes writes the derived byte list.
func (t *Tally) ByteListPath() string {
	return t.Input + ".tally"
}

func (t *Tally) validate() []error {
	var errors []error

	if t.Input == "" {
		errors = append(errors, fmt.Errorf("tally input is required"))
	} else if _, err := os.Stat(t.Input); err != nil {
		errors = append(errors, fmt.Errorf("cannot open the byte list file: %s", t.Input))
	}

	return errors
}
