// Package convert runs the single-pass Fox log to ADIF pipeline.
package convert

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/hessu/logconvert-wsjtx-adif/internal/adif"
	"github.com/hessu/logconvert-wsjtx-adif/internal/model"
	"github.com/hessu/logconvert-wsjtx-adif/internal/wsjtx"
)

// Converter transforms a WSJT-X Fox log into an ADIF document.
type Converter struct {
	cfg model.RunConfig
}

// New returns a Converter for the given run configuration.
func New(cfg model.RunConfig) *Converter {
	return &Converter{cfg: cfg}
}

// Run reads the log from r and writes the ADIF document to w. The whole
// document is validated and built in memory first: any per-line parse error
// aborts the run before a single byte reaches w, so a failed run never
// leaves a partial ADIF file behind. Errors carry the 1-based line number.
func (c *Converter) Run(r io.Reader, w io.Writer) error {
	var buf bytes.Buffer
	out := adif.NewWriter(&buf)
	if err := out.WriteHeader(); err != nil {
		return err
	}

	tracker := wsjtx.NewTracker(c.cfg.Location)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		ln, err := wsjtx.ParseLine(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		contact := tracker.Observe(ln)
		if contact == nil {
			continue
		}
		if err := out.WriteRecord(adif.BuildRecord(*contact, c.cfg)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
