package conf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseStream(t *testing.T) {
	src := `# corpus stream for the nightly drop
-uniform
  -key    2041
-start_skip 12
skip	3
-skip_random
-skip_random_mask 017

-filter_skip 8
-filter_mask 0x0f
-sequencer glibc
-corpus_size 100
`
	g, err := ParseStream(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseStream() error = %v", err)
	}
	if !g.Uniform || !g.SkipRandom {
		t.Errorf("flags not applied: %+v", g)
	}
	if g.Key != 2041 || g.StartSkip != 12 || g.Skip != 3 || g.FilterSkip != 8 {
		t.Errorf("numbers not applied: %+v", g)
	}
	if g.SkipRandomMask == nil || *g.SkipRandomMask != 0x0F {
		t.Errorf("SkipRandomMask = %v, want 017", g.SkipRandomMask)
	}
	if g.FilterMask == nil || *g.FilterMask != 0x0F {
		t.Errorf("FilterMask = %v, want 0x0f", g.FilterMask)
	}
	if g.Sequencer != "glibc" {
		t.Errorf("Sequencer = %q, want glibc", g.Sequencer)
	}
}

func TestParseStreamLaterLinesWin(t *testing.T) {
	g, err := ParseStream(strings.NewReader("-key 1\n-key 2\n"))
	if err != nil {
		t.Fatalf("ParseStream() error = %v", err)
	}
	if g.Key != 2 {
		t.Errorf("Key = %d, want 2", g.Key)
	}
}

func TestParseStreamErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing key value", "-uniform\n-key\n", "line 2"},
		{"key out of range", "-key 4294967296\n", "not an integer"},
		{"mask out of range", "-filter_mask 0400\n", "0 to 255"},
		{"missing byte list", "-byte_list\n", "no -byte_list value given"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStream(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("ParseStream() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadStreamFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.stream")
	if err := os.WriteFile(path, []byte("-key 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadStreamFile(path)
	if err != nil {
		t.Fatalf("LoadStreamFile() error = %v", err)
	}
	if g.Sequencer != "go" || g.SkipRandomMask == nil || *g.SkipRandomMask != 0xFF {
		t.Errorf("defaults not applied: %+v", g)
	}

	bad := filepath.Join(dir, "bad.stream")
	if err := os.WriteFile(bad, []byte("-filter_file "+filepath.Join(dir, "missing")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStreamFile(bad); err == nil {
		t.Error("LoadStreamFile() accepted a missing filter file")
	}
}
