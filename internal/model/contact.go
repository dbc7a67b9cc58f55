package model

import "time"

// Contact represents a single completed QSO extracted from the Fox log.
// Timestamp is the wall-clock time as written in the log, interpreted in
// the run's source timezone; conversion to UTC happens at emit time.
type Contact struct {
	Timestamp time.Time
	Call      string  // DX station callsign, uppercase
	FreqMHz   float64 // dial frequency in MHz
	Mode      string  // digital mode, e.g. "FT8"
	RSTSent   int     // signal report sent, in dB
	RSTRcvd   int     // signal report received, in dB
	Grid      *string // Maidenhead locator from the Sel line, if any
}

// RunConfig carries the per-run settings owned by the CLI layer.
// It is immutable for the duration of one conversion.
type RunConfig struct {
	MyCall     string         // operator's own callsign, required
	Location   *time.Location // timezone of log timestamps; nil means UTC
	PowerWatts int            // transmitter power; 0 means not configured
}
