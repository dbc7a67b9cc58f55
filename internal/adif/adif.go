// Package adif serializes contacts into ADIF tagged text.
package adif

import (
	"fmt"
	"time"
)

// Header and record terminators per the ADIF spec.
const (
	headerText = "wsjtx fox ADIF Export"
	eoh        = "<eoh>"
	eor        = "<eor>"
)

// Field is a single ADIF tag/value pair.
type Field struct {
	Name  string
	Value string
}

// String encodes the field in ADIF's positional-length form, e.g. <CALL:4>W1AW.
func (f Field) String() string {
	return fmt.Sprintf("<%s:%d>%s", f.Name, len(f.Value), f.Value)
}

// Date formats a UTC timestamp as an ADIF QSO_DATE value (YYYYMMDD).
func Date(t time.Time) string {
	return t.Format("20060102")
}

// Time formats a UTC timestamp as an ADIF TIME_ON value (HHMMSS).
func Time(t time.Time) string {
	return t.Format("150405")
}

// SignalReport formats a dB report the way WSJT-X prints it: explicit sign,
// two digits.
func SignalReport(db int) string {
	if db >= 0 {
		return fmt.Sprintf("+%02d", db)
	}
	return fmt.Sprintf("-%02d", -db)
}
