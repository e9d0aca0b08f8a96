package history

import (
	"context"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

// Default demand band for fabricated history: uniform in [150, 450).
const (
	syntheticBase = 150
	syntheticSpan = 300
)

// SyntheticSource fabricates demand history from a seeded generator. It stands
// in for real sales records in development and demos; seeding makes runs
// reproducible in tests.
type SyntheticSource struct {
	mu   sync.Mutex
	rng  *rand.Rand
	base float64
	span float64
}

// NewSyntheticSource returns a source producing uniform demand in [150, 450).
func NewSyntheticSource(seed int64) *SyntheticSource {
	return &SyntheticSource{
		rng:  rand.New(rand.NewSource(seed)),
		base: syntheticBase,
		span: syntheticSpan,
	}
}

// NewSyntheticSourceWithBand returns a source producing uniform demand in
// [base, base+span).
func NewSyntheticSourceWithBand(seed int64, base, span float64) *SyntheticSource {
	return &SyntheticSource{
		rng:  rand.New(rand.NewSource(seed)),
		base: base,
		span: span,
	}
}

// History fabricates days whole-unit observations. The product ID is ignored;
// every product gets the same demand band.
func (s *SyntheticSource) History(_ context.Context, _ uuid.UUID, days int) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	series := make([]float64, days)
	for i := range series {
		series[i] = float64(int(s.rng.Float64()*s.span + s.base))
	}
	return series, nil
}
