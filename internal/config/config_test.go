package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hessu/logconvert-wsjtx-adif/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wsjtx-adif.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "mycall: OH7LZB\ntz: Europe/Helsinki\npower: 100\n")
	s, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if s.MyCall != "OH7LZB" {
		t.Errorf("mycall = %q, want OH7LZB", s.MyCall)
	}
	if s.Timezone != "Europe/Helsinki" {
		t.Errorf("tz = %q, want Europe/Helsinki", s.Timezone)
	}
	if s.PowerWatts != 100 {
		t.Errorf("power = %d, want 100", s.PowerWatts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load error = %v, want nil for missing file", err)
	}
	if s != (config.Station{}) {
		t.Errorf("station = %+v, want zero value", s)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "mycall: [unclosed\n"},
		{"negative power", "mycall: OH7LZB\npower: -5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := config.Load(path); err == nil {
				t.Error("Load error = nil, want error")
			}
		})
	}
}
