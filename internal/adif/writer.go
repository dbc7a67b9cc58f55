package adif

import (
	"io"
	"strings"
)

// Writer emits an ADIF document: a header line first, then one record line
// per contact.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the minimal ADIF header followed by the end-of-header
// marker. Call once, before any record.
func (w *Writer) WriteHeader() error {
	_, err := io.WriteString(w.w, headerText+eoh+"\n")
	return err
}

// WriteRecord writes one record: space-separated fields terminated by the
// end-of-record marker.
func (w *Writer) WriteRecord(fields []Field) error {
	parts := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		parts = append(parts, f.String())
	}
	parts = append(parts, eor)
	_, err := io.WriteString(w.w, strings.Join(parts, " ")+"\n")
	return err
}
