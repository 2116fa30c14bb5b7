package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

var validRoles = []string{"generate", "decode", "tally"}

type Conf struct {
	Role      string    `yaml:"role" toml:"role"`
	Log       Log       `yaml:"log" toml:"log"`
	Generator Generator `yaml:"generator" toml:"generator"`
	Corpus    Corpus    `yaml:"corpus" toml:"corpus"`
	Decode    Decode    `yaml:"decode" toml:"decode"`
	Tally     Tally     `yaml:"tally" toml:"tally"`
}

// LoadFromFile reads a job file. Files ending in .toml are TOML, anything
// else is YAML.
func LoadFromFile(path string) (*Conf, error) {
	var conf Conf

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &conf); err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &conf); err != nil {
			return &conf, err
		}
	}

	if !slices.Contains(validRoles, conf.Role) {
		return nil, fmt.Errorf("role must be one of: %v", validRoles)
	}

	if err := conf.Finish(); err != nil {
		return &conf, err
	}
	return &conf, nil
}

// Finish applies defaults and validates a configuration built in code,
// as the CLI commands do from their flags.
func (c *Conf) Finish() error {
	c.setDefaults()
	return c.validate()
}

func (c *Conf) setDefaults() {
	c.Log.setDefaults()
	c.Generator.setDefaults()
	c.Decode.setDefaults()
}

func (c *Conf) validate() error {
	var allErrors []error

	allErrors = append(allErrors, c.Log.validate()...)

	switch c.Role {
	case "generate":
		allErrors = append(allErrors, c.Generator.validate()...)
		allErrors = append(allErrors, c.Corpus.validate()...)
	case "decode":
		allErrors = append(allErrors, c.Decode.validate()...)
	case "tally":
		allErrors = append(allErrors, c.Tally.validate()...)
	default:
		allErrors = append(allErrors, fmt.Errorf("role must be one of: %v", validRoles))
	}

	return writeErr(allErrors)
}

func writeErr(allErrors []error) error {
	if len(allErrors) > 0 {
		var messages []string
		for _, err := range allErrors {
			messages = append(messages, err.Error())
		}
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(messages, "\n  - "))
	}
	return nil
}
