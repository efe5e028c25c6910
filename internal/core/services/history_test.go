package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mlops-hub-backend/internal/core/domain"
	"mlops-hub-backend/internal/testutil"
)

func msPtr(v int64) *int64 { return &v }

func historyRecord(status string, age time.Duration, elapsed *int64) *domain.EntrypointHistory {
	return &domain.EntrypointHistory{
		EntrypointID:  1,
		Status:        status,
		ElapsedTimeMs: elapsed,
		CreatedAt:     time.Now().Add(-age),
	}
}

func TestRecord_PersistenceFailureSwallowed(t *testing.T) {
	repo := new(testutil.MockEntrypointHistoryRepo)
	svc := NewHistoryService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	// Must not panic or surface the error.
	svc.Record(context.Background(), 1, map[string]interface{}{"q": 1}, nil, 502, domain.CallStatusError, "boom", 12)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestRecord_SerializesBodies(t *testing.T) {
	repo := new(testutil.MockEntrypointHistoryRepo)
	svc := NewHistoryService(repo)

	var recorded *domain.EntrypointHistory
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EntrypointHistory")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.EntrypointHistory)
		}).Return(nil)

	svc.Record(context.Background(), 1,
		map[string]interface{}{"input": "x"},
		map[string]interface{}{"status": "success"},
		200, domain.CallStatusSuccess, "", 37)

	assert.Equal(t, `{"input":"x"}`, recorded.RequestBody)
	assert.Equal(t, `{"status":"success"}`, *recorded.ResponseBody)
	assert.Equal(t, int64(37), *recorded.ElapsedTimeMs)
	assert.Nil(t, recorded.ErrorMessage)
}

func TestGetMetrics_WindowFiltering(t *testing.T) {
	repo := new(testutil.MockEntrypointHistoryRepo)
	svc := NewHistoryService(repo)

	records := []*domain.EntrypointHistory{
		historyRecord(domain.CallStatusSuccess, 2*time.Hour, msPtr(100)), // outside the 1h window
		historyRecord(domain.CallStatusSuccess, 30*time.Minute, msPtr(200)),
		historyRecord(domain.CallStatusError, 10*time.Minute, msPtr(400)),
	}
	repo.On("ListByEntrypoint", mock.Anything, int64(1)).Return(records, nil)

	metrics, err := svc.GetMetrics(context.Background(), 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.SuccessfulRequests)
	assert.Equal(t, int64(1), metrics.ErrorRequests)
	assert.Equal(t, 50.0, metrics.ErrorRate)
	assert.Equal(t, 300.0, metrics.AverageLatency)
	assert.Equal(t, 1, metrics.TimeRangeHours)
}

func TestGetMetrics_Empty(t *testing.T) {
	repo := new(testutil.MockEntrypointHistoryRepo)
	svc := NewHistoryService(repo)

	repo.On("ListByEntrypoint", mock.Anything, int64(1)).Return([]*domain.EntrypointHistory{}, nil)

	metrics, err := svc.GetMetrics(context.Background(), 1, 24)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), metrics.TotalRequests)
	assert.Equal(t, 0.0, metrics.ErrorRate)
	assert.Equal(t, 0.0, metrics.AverageLatency)
}

func TestGetMetrics_LatencyIgnoresMissing(t *testing.T) {
	repo := new(testutil.MockEntrypointHistoryRepo)
	svc := NewHistoryService(repo)

	records := []*domain.EntrypointHistory{
		historyRecord(domain.CallStatusSuccess, 10*time.Minute, msPtr(100)),
		historyRecord(domain.CallStatusSuccess, 10*time.Minute, nil),
	}
	repo.On("ListByEntrypoint", mock.Anything, int64(1)).Return(records, nil)

	metrics, err := svc.GetMetrics(context.Background(), 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, 100.0, metrics.AverageLatency)
}

func TestGetDailyMetrics_ZeroFilledAscending(t *testing.T) {
	repo := new(testutil.MockEntrypointHistoryRepo)
	svc := NewHistoryService(repo)

	records := []*domain.EntrypointHistory{
		historyRecord(domain.CallStatusSuccess, 24*time.Hour, msPtr(100)), // yesterday
	}
	repo.On("ListByEntrypoint", mock.Anything, int64(1)).Return(records, nil)

	daily, err := svc.GetDailyMetrics(context.Background(), 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, daily.Days)
	assert.Len(t, daily.TimeSeries, 3)

	// Ascending date order, ending today.
	now := time.Now()
	for i, bucket := range daily.TimeSeries {
		assert.Equal(t, now.AddDate(0, 0, i-2).Format("2006-01-02"), bucket.Date)
	}

	yesterday := daily.TimeSeries[1]
	assert.Equal(t, int64(1), yesterday.Total)
	assert.Equal(t, int64(1), yesterday.Successful)
	assert.Equal(t, int64(0), yesterday.Errors)

	assert.Equal(t, int64(0), daily.TimeSeries[0].Total)
	assert.Equal(t, int64(0), daily.TimeSeries[2].Total)
}
