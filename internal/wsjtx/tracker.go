package wsjtx

import (
	"regexp"
	"time"

	"github.com/hessu/logconvert-wsjtx-adif/internal/model"
)

var gridRe = regexp.MustCompile(`^[A-Z][A-Z][0-9][0-9]$`)

// pending holds a selected hound awaiting its roger.
type pending struct {
	freqMHz float64
	rstSent int
	grid    string
}

// Tracker correlates Sel lines with the Rx roger that completes a QSO.
// A Sel line marks the station as ongoing; the first acknowledging Rx line
// from that station produces a contact and clears the entry, so a repeated
// roger never logs twice.
type Tracker struct {
	loc     *time.Location
	ongoing map[string]pending
}

// NewTracker returns a Tracker interpreting log timestamps in loc.
// A nil loc means timestamps are already UTC.
func NewTracker(loc *time.Location) *Tracker {
	if loc == nil {
		loc = time.UTC
	}
	return &Tracker{loc: loc, ongoing: make(map[string]pending)}
}

// Observe feeds one classified line into the tracker. It returns a contact
// when the line completes a QSO, nil otherwise.
func (t *Tracker) Observe(ln Line) *model.Contact {
	switch ln.Kind {
	case KindSelect:
		t.ongoing[ln.Select.Call] = pending{
			freqMHz: ln.FreqMHz,
			rstSent: ln.Select.RSTSent,
			grid:    ln.Select.Grid,
		}
		return nil

	case KindRx:
		if !ln.Rx.Roger {
			return nil
		}
		q, ok := t.ongoing[ln.Rx.Call]
		if !ok {
			return nil
		}
		delete(t.ongoing, ln.Rx.Call)

		ts := ln.Timestamp
		c := &model.Contact{
			Timestamp: time.Date(ts.Year(), ts.Month(), ts.Day(),
				ts.Hour(), ts.Minute(), ts.Second(), 0, t.loc),
			Call:    ln.Rx.Call,
			FreqMHz: q.freqMHz,
			Mode:    Mode,
			RSTSent: q.rstSent,
			RSTRcvd: ln.Rx.RSTRcvd,
		}
		if gridRe.MatchString(q.grid) {
			grid := q.grid
			c.Grid = &grid
		}
		return c
	}
	return nil
}
