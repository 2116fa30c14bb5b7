package conf

import (
	"ecorpus/internal/flog"
)

type Log struct {
	Level_ string     `yaml:"level" toml:"level"`
	Level  flog.Level `yaml:"-" toml:"-"`
}

func (l *Log) setDefaults() {
	if l.Level_ == "" {
		l.Level_ = "info"
	}
}

func (l *Log) validate() []error {
	var errors []error

	lvl, err := flog.ParseLevel(l.Level_)
	if err != nil {
		errors = append(errors, err)
	}
	l.Level = lvl

	return errors
}
