package flog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
	None
)

var levelNames = map[Level]string{
	Debug: "DEBUG",
	Info:  "INFO",
	Warn:  "WARN",
	Error: "ERROR",
}

var mu sync.Mutex

var (
	minLvl = Info
	out    = io.Writer(os.Stderr)
	exit   = os.Exit
)

// ParseLevel maps a config/flag string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info", "":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	case "none", "off":
		return None, nil
	}
	return Info, fmt.Errorf("unknown log level %q", s)
}

func SetLevel(l Level) {
	mu.Lock()
	minLvl = l
	mu.Unlock()
}

func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLvl
}

// SetOutput redirects log lines, mainly for tests. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	mu.Lock()
	out = w
	mu.Unlock()
}

func logf(l Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLvl {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(out, "%s [%s] %s\n", ts, levelNames[l], fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) { logf(Debug, format, args...) }
func Infof(format string, args ...any)  { logf(Info, format, args...) }
func Warnf(format string, args ...any)  { logf(Warn, format, args...) }
func Errorf(format string, args ...any) { logf(Error, format, args...) }

// Fatalf logs at error level regardless of the configured level and exits with status 1.
func Fatalf(format string, args ...any) {
	mu.Lock()
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(out, "%s [FATAL] %s\n", ts, fmt.Sprintf(format, args...))
	mu.Unlock()
	exit(1)
}
