package health

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pfhealth/vitality-engine/internal/model/health"
)

const chartDays = 7

// Service synthesizes recovery metrics until the analytics pipeline
// replaces it. The random source and clock are injectable so tests can
// pin both.
type Service struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewService returns a generator seeded from the wall clock.
func NewService() *Service {
	return NewServiceWith(rand.NewSource(time.Now().UnixNano()), time.Now)
}

// NewServiceWith returns a generator backed by the supplied source and clock.
func NewServiceWith(src rand.Source, now func() time.Time) *Service {
	return &Service{rng: rand.New(src), now: now}
}

// Metrics draws a fresh snapshot. Each field is uniform over its
// inclusive range; nothing is retained between calls.
func (s *Service) Metrics(_ context.Context) health.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return health.Metrics{
		RecoveryScore:      s.intBetween(70, 95),
		MobilityScore:      s.intBetween(60, 90),
		PainLevel:          s.intBetween(1, 5),
		ExercisesCompleted: s.intBetween(3, 15),
		StreakDays:         s.intBetween(1, 10),
	}
}

// RecoveryChart returns seven consecutive days ending today, oldest
// first, each with an independently drawn score.
func (s *Service) RecoveryChart(_ context.Context) []health.RecoveryDataPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	points := make([]health.RecoveryDataPoint, 0, chartDays)
	for i := 0; i < chartDays; i++ {
		day := today.AddDate(0, 0, i-(chartDays-1))
		points = append(points, health.RecoveryDataPoint{
			Date:  day.Format("2006-01-02"),
			Score: s.intBetween(65, 95),
		})
	}
	return points
}

// intBetween draws uniformly from [lo, hi]. Caller holds the lock;
// rand.Rand is not safe for concurrent use.
func (s *Service) intBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}
