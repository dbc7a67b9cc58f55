package wsjtx_test

import (
	"testing"
	"time"

	"github.com/hessu/logconvert-wsjtx-adif/internal/wsjtx"
)

func mustParse(t *testing.T, line string) wsjtx.Line {
	t.Helper()
	ln, err := wsjtx.ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine(%q) error = %v", line, err)
	}
	return ln
}

func TestTrackerCompletesQSO(t *testing.T) {
	tr := wsjtx.NewTracker(nil)

	sel := mustParse(t, "2019-11-22 05:25:37  21.091  1  0  0 Sel:  JM1LSQ      -17 QM05")
	if c := tr.Observe(sel); c != nil {
		t.Fatalf("Sel line produced a contact: %+v", c)
	}

	rx := mustParse(t, "2019-11-22 05:26:29  21.091  0  1  1 Rx:   052615  -8 -0.0  300 ~  XZ2D JM1LSQ R+01")
	c := tr.Observe(rx)
	if c == nil {
		t.Fatal("roger from selected station produced no contact")
	}

	if c.Call != "JM1LSQ" {
		t.Errorf("call = %q, want JM1LSQ", c.Call)
	}
	if c.Mode != "FT8" {
		t.Errorf("mode = %q, want FT8", c.Mode)
	}
	if c.FreqMHz != 21.091 {
		t.Errorf("freq = %v, want 21.091", c.FreqMHz)
	}
	if c.RSTSent != -17 || c.RSTRcvd != 1 {
		t.Errorf("reports = %d/%d, want -17/+1", c.RSTSent, c.RSTRcvd)
	}
	if c.Grid == nil || *c.Grid != "QM05" {
		t.Errorf("grid = %v, want QM05", c.Grid)
	}
	wantTS := time.Date(2019, 11, 22, 5, 26, 29, 0, time.UTC)
	if !c.Timestamp.Equal(wantTS) {
		t.Errorf("timestamp = %v, want %v", c.Timestamp, wantTS)
	}

	// A repeated roger must not log the QSO twice.
	if c := tr.Observe(rx); c != nil {
		t.Errorf("repeated roger produced a second contact: %+v", c)
	}
}

func TestTrackerIgnoresUnselectedStation(t *testing.T) {
	tr := wsjtx.NewTracker(nil)
	rx := mustParse(t, "2019-11-22 05:26:29  21.091  0  1  1 Rx:   052615  -8 -0.0  300 ~  XZ2D JM1LSQ R+01")
	if c := tr.Observe(rx); c != nil {
		t.Errorf("roger without a Sel produced a contact: %+v", c)
	}
}

func TestTrackerOmitsInvalidGrid(t *testing.T) {
	tr := wsjtx.NewTracker(nil)
	tr.Observe(mustParse(t, "2019-11-22 05:25:37  21.091  1  0  0 Sel:  OH0/OH7LZB  -17 -17"))
	c := tr.Observe(mustParse(t, "2019-11-22 05:26:29  21.091  0  1  1 Rx:   052615  -8 -0.0  300 ~  XZ2D OH0/OH7LZB R+01"))
	if c == nil {
		t.Fatal("roger produced no contact")
	}
	if c.Grid != nil {
		t.Errorf("grid = %q, want omitted", *c.Grid)
	}
}

func TestTrackerAppliesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Helsinki")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	tr := wsjtx.NewTracker(loc)
	tr.Observe(mustParse(t, "2019-11-22 00:09:37  21.091  1  0  0 Sel:  JM1LSQ      -17 QM05"))
	c := tr.Observe(mustParse(t, "2019-11-22 00:10:29  21.091  0  1  1 Rx:   001015  -8 -0.0  300 ~  XZ2D JM1LSQ R+01"))
	if c == nil {
		t.Fatal("roger produced no contact")
	}
	// Helsinki is UTC+2 in November: 00:10 local is 22:10 the previous day.
	wantUTC := time.Date(2019, 11, 21, 22, 10, 29, 0, time.UTC)
	if !c.Timestamp.UTC().Equal(wantUTC) {
		t.Errorf("timestamp UTC = %v, want %v", c.Timestamp.UTC(), wantUTC)
	}
}
