package adif

import (
	"fmt"

	"github.com/hessu/logconvert-wsjtx-adif/internal/model"
)

// BuildRecord assembles the ADIF fields for one contact in a pinned order,
// so identical (contact, config) input always yields byte-identical output.
// The timestamp is converted to UTC here; a conversion that crosses midnight
// moves QSO_DATE to the previous or next calendar day as appropriate.
func BuildRecord(c model.Contact, cfg model.RunConfig) []Field {
	utc := c.Timestamp.UTC()

	fields := []Field{
		{"CALL", c.Call},
		{"MODE", c.Mode},
		{"RST_SENT", SignalReport(c.RSTSent)},
		{"RST_RCVD", SignalReport(c.RSTRcvd)},
		{"QSO_DATE", Date(utc)},
		{"TIME_ON", Time(utc)},
		{"QSO_DATE_OFF", Date(utc)},
		{"TIME_OFF", Time(utc)},
	}

	if band, ok := FreqToBand(c.FreqMHz * 1000.0); ok {
		fields = append(fields, Field{"BAND", band})
	}
	fields = append(fields, Field{"FREQ", fmt.Sprintf("%.3f", c.FreqMHz)})
	fields = append(fields, Field{"STATION_CALLSIGN", cfg.MyCall})

	// Locator is optional; compound calls like OH0/OH7LZB do not transmit it.
	if c.Grid != nil {
		fields = append(fields, Field{"GRIDSQUARE", *c.Grid})
	}
	if cfg.PowerWatts > 0 {
		fields = append(fields, Field{"TX_PWR", fmt.Sprintf("%d", cfg.PowerWatts)})
	}

	return fields
}
