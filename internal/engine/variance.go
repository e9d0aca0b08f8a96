package engine

import (
	"fmt"
	"math"
)

// CoefficientOfVariation computes the population standard deviation of the
// series divided by its mean. Higher values mean noisier history and are used
// downstream as an inverse confidence signal.
func CoefficientOfVariation(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, fmt.Errorf("%w: historical series is empty", ErrInvalidInput)
	}

	m := mean(series)
	if m == 0 {
		return 0, fmt.Errorf("%w: historical series has zero mean; cannot compute variance", ErrInvalidInput)
	}

	var sumSq float64
	for _, v := range series {
		d := v - m
		sumSq += d * d
	}
	variance := sumSq / float64(len(series))

	return math.Sqrt(variance) / m, nil
}
