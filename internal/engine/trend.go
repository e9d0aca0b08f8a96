package engine

import "fmt"

// TrendWindow is the default number of trailing and leading observations
// compared when estimating demand trend.
const TrendWindow = 7

// Trend computes the relative demand trend of a historical series: the mean of
// the last TrendWindow observations against the mean of the first TrendWindow,
// as a fraction of the older mean. A positive result means demand is rising.
func Trend(series []float64) (float64, error) {
	return TrendWithWindow(series, TrendWindow)
}

// TrendWithWindow is Trend with an explicit window size. The series must hold
// at least 2*window observations so the two windows never overlap.
func TrendWithWindow(series []float64, window int) (float64, error) {
	if window < 1 {
		return 0, fmt.Errorf("%w: trend window must be at least 1, got %d", ErrInvalidInput, window)
	}
	if len(series) < 2*window {
		return 0, fmt.Errorf("%w: historical series needs at least %d observations for a %d-day trend window, got %d",
			ErrInvalidInput, 2*window, window, len(series))
	}

	olderAvg := mean(series[:window])
	recentAvg := mean(series[len(series)-window:])

	if olderAvg == 0 {
		return 0, fmt.Errorf("%w: first %d observations are all zero; trend ratio is undefined", ErrInvalidInput, window)
	}

	return (recentAvg - olderAvg) / olderAvg, nil
}

func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}
