package engine

// Seasonal peak days of year (early spring, early summer, late autumn) and the
// uplift applied within peakRadius days of any of them.
var seasonalPeaks = [3]int{60, 150, 330}

const (
	peakRadius       = 30
	seasonalUplift   = 1.2
	seasonalBaseline = 1.0
)

// Seasonality maps a day-of-year offset to a demand multiplier. Offsets are
// wrapped modulo 365; offsets within 30 days of a seasonal peak get a 20%
// uplift, everything else is baseline. A coarse fixed-calendar heuristic,
// deliberately deterministic.
func Seasonality(dayOffset int) float64 {
	day := dayOffset % 365
	if day < 0 {
		day += 365
	}

	for _, peak := range seasonalPeaks {
		diff := day - peak
		if diff < 0 {
			diff = -diff
		}
		if diff < peakRadius {
			return seasonalUplift
		}
	}
	return seasonalBaseline
}
