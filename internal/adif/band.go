package adif

// bandEdge maps an ADIF band identifier to its rough edges in kHz.
type bandEdge struct {
	name string
	lo   float64
	hi   float64
}

// Ordered lowest to highest so lookup is deterministic.
var bandEdges = []bandEdge{
	{"160m", 1800, 2000},
	{"80m", 3500, 3800},
	{"60m", 5300, 5400},
	{"40m", 7000, 7200},
	{"30m", 10100, 10150},
	{"20m", 14000, 14250},
	{"17m", 18068, 18168},
	{"15m", 21000, 21450},
	{"12m", 24890, 24990},
	{"10m", 28000, 29690},
	{"6m", 50000, 52000},
	{"2m", 140000, 150000},
	{"70cm", 430000, 440000},
}

// FreqToBand converts a frequency in kHz to an ADIF band identifier.
// The second return value is false when the frequency falls outside
// every known band.
func FreqToBand(khz float64) (string, bool) {
	for _, b := range bandEdges {
		if khz >= b.lo && khz <= b.hi {
			return b.name, true
		}
	}
	return "", false
}
