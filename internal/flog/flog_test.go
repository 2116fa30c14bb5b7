package flog

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"", Info, false},
		{"warning", Warn, false},
		{"error", Error, false},
		{"none", None, false},
		{"loud", Info, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	prev := GetLevel()
	defer func() {
		SetLevel(prev)
		SetOutput(nil)
	}()

	SetLevel(Warn)
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info line leaked at warn level: %q", got)
	}
	if !strings.Contains(got, "[WARN] shown 2") {
		t.Errorf("warn line missing: %q", got)
	}
}

func TestFatalfExits(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	code := -1
	exit = func(c int) { code = c }
	defer func() {
		exit = os.Exit
		SetOutput(nil)
	}()

	Fatalf("boom: %s", "reason")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "[FATAL] boom: reason") {
		t.Errorf("fatal line missing: %q", buf.String())
	}
}
