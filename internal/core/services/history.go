package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

// HistoryService persists gateway call outcomes and derives time-windowed
// metrics from them. Recording never fails the caller: a call's outcome must
// not make the original inference call appear to fail.
type HistoryService struct {
	repo ports.EntrypointHistoryRepository
}

func NewHistoryService(repo ports.EntrypointHistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Record writes one immutable history row. Serialization failures fall back
// to a literal rendering; persistence failures are logged and swallowed.
func (s *HistoryService) Record(
	ctx context.Context,
	entrypointID int64,
	requestBody interface{},
	responseBody interface{},
	statusCode int,
	status string,
	errorMessage string,
	elapsedMs int64,
) {
	if status == "" {
		status = domain.CallStatusSuccess
	}

	record := &domain.EntrypointHistory{
		EntrypointID:  entrypointID,
		RequestBody:   renderJSON(requestBody),
		StatusCode:    statusCode,
		Status:        status,
		ElapsedTimeMs: &elapsedMs,
		CreatedAt:     time.Now(),
	}
	if responseBody != nil {
		body := renderJSON(responseBody)
		record.ResponseBody = &body
	}
	if errorMessage != "" {
		record.ErrorMessage = &errorMessage
	}

	if err := s.repo.Create(ctx, record); err != nil {
		log.WithError(err).WithField("entrypoint_id", entrypointID).Error("failed to persist entrypoint history")
	}
}

func (s *HistoryService) GetHistory(ctx context.Context, entrypointID int64) ([]*domain.EntrypointHistory, error) {
	return s.repo.ListByEntrypoint(ctx, entrypointID)
}

func (s *HistoryService) Count(ctx context.Context, entrypointID int64) (int64, error) {
	return s.repo.CountByEntrypoint(ctx, entrypointID)
}

func (s *HistoryService) DeleteByEntrypoint(ctx context.Context, entrypointID int64) error {
	return s.repo.DeleteByEntrypoint(ctx, entrypointID)
}

// GetMetrics aggregates records newer than the trailing window.
func (s *HistoryService) GetMetrics(ctx context.Context, entrypointID int64, hours int) (*domain.EntrypointMetrics, error) {
	records, err := s.repo.ListByEntrypoint(ctx, entrypointID)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)

	metrics := &domain.EntrypointMetrics{TimeRangeHours: hours}
	var latencySum int64
	var latencyCount int64
	for _, r := range records {
		if !r.CreatedAt.After(cutoff) {
			continue
		}
		metrics.TotalRequests++
		switch r.Status {
		case domain.CallStatusSuccess:
			metrics.SuccessfulRequests++
		case domain.CallStatusError:
			metrics.ErrorRequests++
		}
		if r.ElapsedTimeMs != nil {
			latencySum += *r.ElapsedTimeMs
			latencyCount++
		}
	}

	if metrics.TotalRequests > 0 {
		metrics.ErrorRate = float64(metrics.ErrorRequests) / float64(metrics.TotalRequests) * 100
	}
	if latencyCount > 0 {
		metrics.AverageLatency = float64(latencySum) / float64(latencyCount)
	}

	return metrics, nil
}

// GetDailyMetrics buckets the trailing N days by calendar date, oldest
// first, zero-filling days with no records.
func (s *HistoryService) GetDailyMetrics(ctx context.Context, entrypointID int64, days int) (*domain.DailyMetrics, error) {
	records, err := s.repo.ListByEntrypoint(ctx, entrypointID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cutoff := now.AddDate(0, 0, -days)

	type counts struct {
		success int64
		errors  int64
	}
	byDate := make(map[string]counts)
	for _, r := range records {
		if !r.CreatedAt.After(cutoff) {
			continue
		}
		date := r.CreatedAt.Format("2006-01-02")
		c := byDate[date]
		switch r.Status {
		case domain.CallStatusSuccess:
			c.success++
		case domain.CallStatusError:
			c.errors++
		}
		byDate[date] = c
	}

	series := make([]domain.DailyBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		c := byDate[date]
		series = append(series, domain.DailyBucket{
			Date:       date,
			Total:      c.success + c.errors,
			Successful: c.success,
			Errors:     c.errors,
		})
	}

	return &domain.DailyMetrics{TimeSeries: series, Days: days}, nil
}

func renderJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
