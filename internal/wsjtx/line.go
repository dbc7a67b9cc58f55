// Package wsjtx parses the line-oriented log WSJT-X writes in Fox mode and
// reconstructs completed QSOs from it. Replies are detected here from the
// Sel/Rx exchange rather than trusting WSJT-X's own Log lines.
package wsjtx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Mode is the digital mode used in Fox/Hound operation.
const Mode = "FT8"

// Kind classifies one log line.
type Kind int

const (
	// KindSkip covers blank lines, free text, and WSJT-X bookkeeping lines
	// (Tx1:, Log:, ...) that never describe a contact themselves.
	KindSkip Kind = iota
	// KindSelect is a Sel: line — the operator picked a hound to work.
	KindSelect
	// KindRx is an Rx: line — a decoded transmission.
	KindRx
)

// Line is the classified form of one raw log line.
type Line struct {
	Kind      Kind
	Timestamp time.Time // wall-clock as written in the log, location-free
	FreqMHz   float64   // dial frequency from the line preamble
	Select    *SelectInfo
	Rx        *RxInfo
}

// SelectInfo carries the payload of a Sel: line.
type SelectInfo struct {
	Call    string
	RSTSent int    // report we will send, in dB
	Grid    string // locator as printed; validated only at emit time
}

// RxInfo carries the payload of an Rx: line.
type RxInfo struct {
	Call    string
	Roger   bool // message acknowledged our report (R+nn / R-nn)
	RSTRcvd int  // report the station gave us; meaningful only when Roger
}

// ParseError describes a line that matched the contact grammar but failed
// field validation. Per-line errors are fatal to the whole run.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Line)
}

// Every Fox log line starts with the same preamble:
//
//	2019-11-22 05:25:37  21.091  1  0  0 Sel:  JM1LSQ      -17 QM05
//	2019-11-22 05:26:00  21.091  0  1  1 Tx1:  JM1LSQ XZ2D -17
//	2019-11-22 05:26:29  21.091  0  1  1 Rx:   052615  -8 -0.0  300 ~  XZ2D JM1LSQ R+01
//	2019-11-22 05:26:30  21.091  0  1  1 Log:  JM1LSQ QM05 -17 +01 15m
//
// The layout is pinned here as a constant grammar; anything not matching it
// is format noise, not an error.
var lineRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2}:\d{2})\s+(\d+\.\d+)\s+\d+\s+\d+\s+\d+\s+(\w+:)\s+(.*)`)

var callRe = regexp.MustCompile(`[A-Za-z0-9]`)

const timestampLayout = "2006-01-02 15:04:05"

// ParseLine classifies a single log line and extracts its fields. It is a
// pure function: the same line always yields the same result. Lines that do
// not belong to the contact grammar come back as KindSkip with a nil error;
// a non-nil error means the line looked like a contact line but a mandatory
// field is malformed.
func ParseLine(s string) (Line, error) {
	g := lineRe.FindStringSubmatch(s)
	if g == nil {
		return Line{Kind: KindSkip}, nil
	}

	switch g[4] {
	case "Sel:":
		return parseSelect(s, g)
	case "Rx:":
		return parseRx(s, g)
	default:
		// Tx1:, Log: and friends are WSJT-X's own bookkeeping.
		return Line{Kind: KindSkip}, nil
	}
}

// parsePreamble validates the shared date/time/frequency prefix.
func parsePreamble(raw string, g []string) (time.Time, float64, error) {
	ts, err := time.Parse(timestampLayout, g[1]+" "+g[2])
	if err != nil {
		return time.Time{}, 0, &ParseError{Line: raw, Reason: "invalid timestamp"}
	}
	freq, err := strconv.ParseFloat(g[3], 64)
	if err != nil {
		return time.Time{}, 0, &ParseError{Line: raw, Reason: "invalid frequency"}
	}
	return ts, freq, nil
}

func parseSelect(raw string, g []string) (Line, error) {
	ts, freq, err := parsePreamble(raw, g)
	if err != nil {
		return Line{}, err
	}

	fields := strings.Fields(g[5])
	if len(fields) != 3 {
		return Line{}, &ParseError{Line: raw, Reason: "Sel line needs call, report and locator"}
	}
	call, err := normalizeCall(raw, fields[0])
	if err != nil {
		return Line{}, err
	}
	rst, err := strconv.Atoi(fields[1])
	if err != nil {
		return Line{}, &ParseError{Line: raw, Reason: "Sel line report is not a dB value"}
	}

	return Line{
		Kind:      KindSelect,
		Timestamp: ts,
		FreqMHz:   freq,
		Select:    &SelectInfo{Call: call, RSTSent: rst, Grid: fields[2]},
	}, nil
}

func parseRx(raw string, g []string) (Line, error) {
	ts, freq, err := parsePreamble(raw, g)
	if err != nil {
		return Line{}, err
	}

	// Decode metadata (time, SNR, DT, offset, mode) then the message itself.
	fields := strings.Fields(g[5])

	ln := Line{Kind: KindRx, Timestamp: ts, FreqMHz: freq}

	// A standard two-call exchange is exactly three message words. Shorter
	// decodes (a plain 73) and longer free-text messages are ordinary
	// on-frequency traffic that never completes a QSO.
	if len(fields) != 8 {
		ln.Rx = &RxInfo{}
		return ln, nil
	}

	report := fields[7]
	if len(report) < 2 || report[0] != 'R' {
		ln.Rx = &RxInfo{Call: strings.ToUpper(stripBrackets(fields[6]))}
		return ln, nil
	}
	rst, err := strconv.Atoi(report[1:])
	if err != nil {
		// Starts with R but carries no report: RR73 and similar.
		ln.Rx = &RxInfo{Call: strings.ToUpper(stripBrackets(fields[6]))}
		return ln, nil
	}
	call, err := normalizeCall(raw, fields[6])
	if err != nil {
		return Line{}, err
	}

	ln.Rx = &RxInfo{Call: call, Roger: true, RSTRcvd: rst}
	return ln, nil
}

// stripBrackets turns <OH0/OH7LZB> into OH0/OH7LZB.
func stripBrackets(call string) string {
	if strings.HasPrefix(call, "<") && strings.HasSuffix(call, ">") {
		return call[1 : len(call)-1]
	}
	return call
}

func normalizeCall(raw, call string) (string, error) {
	call = stripBrackets(call)
	if !callRe.MatchString(call) {
		return "", &ParseError{Line: raw, Reason: "callsign has no alphanumeric characters"}
	}
	return strings.ToUpper(call), nil
}
