package distance

import (
	"math/rand"
	"sync"
)

// Estimator produces a road-distance estimate in kilometers between two
// free-text locations. Booking logic only depends on this interface so a
// real geo provider can be substituted later.
type Estimator interface {
	EstimateKm(pickup, dropoff string) (float64, error)
}

// StubEstimator returns a uniform whole-km estimate in [5,50]. It stands in
// for a real distance service and should not be trusted for real fares.
type StubEstimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewStub(seed int64) *StubEstimator {
	return &StubEstimator{rnd: rand.New(rand.NewSource(seed))}
}

func (s *StubEstimator) EstimateKm(pickup, dropoff string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.rnd.Intn(46) + 5), nil
}

// Fixed always returns the same distance; used in tests and quotes where
// the caller already knows the distance.
type Fixed float64

func (f Fixed) EstimateKm(pickup, dropoff string) (float64, error) {
	return float64(f), nil
}
