package services

import (
	"context"
	"time"

	"mlops-hub-backend/internal/cache"
	ports "mlops-hub-backend/internal/core/ports/output"
)

// ExperimentService fronts the experiment-tracking server with a short TTL
// cache on list-style reads. Callers can pass refresh=true to bypass the
// cache when they need the live view.
type ExperimentService struct {
	tracker ports.ExperimentTracker
	cache   *cache.TTLCache
}

func NewExperimentService(tracker ports.ExperimentTracker, ttl time.Duration) *ExperimentService {
	return &ExperimentService{
		tracker: tracker,
		cache:   cache.NewTTLCache(ttl),
	}
}

func (s *ExperimentService) CreateExperiment(ctx context.Context, name string) (string, error) {
	id, err := s.tracker.CreateExperiment(ctx, name)
	if err != nil {
		return "", err
	}
	s.cache.Invalidate("experiments")
	return id, nil
}

func (s *ExperimentService) GetExperiment(ctx context.Context, experimentID string) (interface{}, error) {
	return s.tracker.GetExperiment(ctx, experimentID)
}

func (s *ExperimentService) ListExperiments(ctx context.Context, refresh bool) (interface{}, error) {
	const key = "experiments"
	if !refresh {
		if v, ok := s.cache.Get(key); ok {
			return v, nil
		}
	}

	result, err := s.tracker.ListExperiments(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, result)
	return result, nil
}

func (s *ExperimentService) SearchExperiments(ctx context.Context, filter string) (interface{}, error) {
	return s.tracker.SearchExperiments(ctx, filter)
}

func (s *ExperimentService) CreateRun(ctx context.Context, experimentID string) (interface{}, error) {
	return s.tracker.CreateRun(ctx, experimentID)
}

func (s *ExperimentService) GetRun(ctx context.Context, runID string) (interface{}, error) {
	return s.tracker.GetRun(ctx, runID)
}

func (s *ExperimentService) SearchRuns(ctx context.Context, experimentID, filter string) (interface{}, error) {
	return s.tracker.SearchRuns(ctx, experimentID, filter)
}

func (s *ExperimentService) MetricHistory(ctx context.Context, runID, metricKey string) (interface{}, error) {
	return s.tracker.MetricHistory(ctx, runID, metricKey)
}

func (s *ExperimentService) SearchRegisteredModels(ctx context.Context, filter string, refresh bool) (interface{}, error) {
	key := "registered-models:" + filter
	if !refresh {
		if v, ok := s.cache.Get(key); ok {
			return v, nil
		}
	}

	result, err := s.tracker.SearchRegisteredModels(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, result)
	return result, nil
}
