// Package config loads optional per-station defaults from a YAML file.
// Command-line flags always win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Station holds the defaults an operator rarely changes between runs.
type Station struct {
	// MyCall is the operator's own callsign.
	MyCall string `yaml:"mycall"`
	// Timezone is the IANA zone of log timestamps (e.g. "Europe/Helsinki").
	// Empty means the log is already UTC.
	Timezone string `yaml:"tz"`
	// PowerWatts is the transmitter power echoed into every record.
	// Zero means no TX_PWR field.
	PowerWatts int `yaml:"power"`
}

// DefaultPath returns the per-user config location, ~/.wsjtx-adif.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".wsjtx-adif.yaml"), nil
}

// Load reads station defaults from path. A missing file is not an error and
// yields zero defaults; a file that exists but does not parse is.
func Load(path string) (Station, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Station{}, nil
	}
	if err != nil {
		return Station{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var s Station
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Station{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if s.PowerWatts < 0 {
		return Station{}, fmt.Errorf("config file %s: power must be positive", path)
	}
	return s, nil
}
