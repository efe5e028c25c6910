package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mlops-hub-backend/internal/core/domain"
	"mlops-hub-backend/internal/testutil"
)

func int64Ptr(v int64) *int64 { return &v }

func newGatewayService() (*GatewayService, *testutil.MockEntrypointRepo, *testutil.MockInferenceServiceRepo, *testutil.MockInferenceClient, *testutil.MockEntrypointHistoryRepo) {
	entrypointRepo := new(testutil.MockEntrypointRepo)
	serviceRepo := new(testutil.MockInferenceServiceRepo)
	client := new(testutil.MockInferenceClient)
	historyRepo := new(testutil.MockEntrypointHistoryRepo)
	svc := NewGatewayService(entrypointRepo, serviceRepo, client, NewHistoryService(historyRepo))
	return svc, entrypointRepo, serviceRepo, client, historyRepo
}

func activeEntrypoint() *domain.Entrypoint {
	return &domain.Entrypoint{
		ID:                 1,
		Name:               "ep",
		Status:             domain.EntrypointStatusActive,
		InferenceServiceID: int64Ptr(2),
	}
}

func runningService() *domain.InferenceService {
	return &domain.InferenceService{ID: 2, Name: "svc", BaseURL: "http://backend:8000"}
}

func TestInfer_InactiveEntrypoint(t *testing.T) {
	svc, entrypointRepo, _, client, _ := newGatewayService()

	ep := activeEntrypoint()
	ep.Status = domain.EntrypointStatusInactive
	entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(ep, nil)

	_, err := svc.Infer(context.Background(), 1, map[string]interface{}{"input": "x"})
	assert.ErrorIs(t, err, domain.ErrEntrypointNotActive)
	client.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything, mock.Anything)
}

func TestInfer_NoBoundService(t *testing.T) {
	svc, entrypointRepo, _, _, _ := newGatewayService()

	ep := activeEntrypoint()
	ep.InferenceServiceID = nil
	entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(ep, nil)

	_, err := svc.Infer(context.Background(), 1, nil)
	assert.ErrorIs(t, err, domain.ErrNoInferenceService)
}

func TestInfer_BlankBaseURL(t *testing.T) {
	svc, entrypointRepo, serviceRepo, _, _ := newGatewayService()

	entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(activeEntrypoint(), nil)
	serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.InferenceService{ID: 2, BaseURL: "   "}, nil)

	_, err := svc.Infer(context.Background(), 1, nil)
	assert.ErrorIs(t, err, domain.ErrNoBaseURL)
}

func TestInfer_TransportFailure(t *testing.T) {
	svc, entrypointRepo, serviceRepo, client, historyRepo := newGatewayService()

	entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(activeEntrypoint(), nil)
	serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(runningService(), nil)
	client.On("Predict", mock.Anything, "http://backend:8000/predict", mock.Anything).Return(nil, errors.New("connection refused"))

	var recorded *domain.EntrypointHistory
	historyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EntrypointHistory")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.EntrypointHistory)
		}).Return(nil)

	_, err := svc.Infer(context.Background(), 1, map[string]interface{}{"input": "x"})
	assert.ErrorIs(t, err, domain.ErrBadGateway)

	historyRepo.AssertNumberOfCalls(t, "Create", 1)
	assert.Equal(t, http.StatusBadGateway, recorded.StatusCode)
	assert.Equal(t, domain.CallStatusError, recorded.Status)
	assert.Nil(t, recorded.ResponseBody)
	assert.Contains(t, *recorded.ErrorMessage, "connection refused")
}

func TestInfer_UpstreamErrorObject(t *testing.T) {
	svc, entrypointRepo, serviceRepo, client, historyRepo := newGatewayService()

	entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(activeEntrypoint(), nil)
	serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(runningService(), nil)
	client.On("Predict", mock.Anything, mock.Anything, mock.Anything).Return(map[string]interface{}{
		"status":  "error",
		"message": "bad input",
	}, nil)

	var recorded *domain.EntrypointHistory
	historyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EntrypointHistory")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.EntrypointHistory)
		}).Return(nil)

	result, err := svc.Infer(context.Background(), 1, map[string]interface{}{"input": "x"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)

	body := result.Body.(map[string]interface{})
	assert.Equal(t, "error", body["status"])

	assert.Equal(t, http.StatusBadRequest, recorded.StatusCode)
	assert.Equal(t, domain.CallStatusError, recorded.Status)
	assert.Equal(t, "bad input", *recorded.ErrorMessage)
}

func TestInfer_StatusDefaultedToSuccess(t *testing.T) {
	svc, entrypointRepo, serviceRepo, client, historyRepo := newGatewayService()

	entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(activeEntrypoint(), nil)
	serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(runningService(), nil)
	client.On("Predict", mock.Anything, mock.Anything, mock.Anything).Return(map[string]interface{}{
		"prediction": 0.93,
	}, nil)

	var recorded *domain.EntrypointHistory
	historyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EntrypointHistory")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.EntrypointHistory)
		}).Return(nil)

	result, err := svc.Infer(context.Background(), 1, map[string]interface{}{"input": "x"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)

	body := result.Body.(map[string]interface{})
	assert.Equal(t, "success", body["status"])

	assert.Equal(t, http.StatusOK, recorded.StatusCode)
	assert.Equal(t, domain.CallStatusSuccess, recorded.Status)
}

func TestInfer_NonObjectResponsePassesThrough(t *testing.T) {
	svc, entrypointRepo, serviceRepo, client, historyRepo := newGatewayService()

	entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(activeEntrypoint(), nil)
	serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(runningService(), nil)
	client.On("Predict", mock.Anything, mock.Anything, mock.Anything).Return([]interface{}{1.0, 2.0}, nil)
	historyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EntrypointHistory")).Return(nil)

	result, err := svc.Infer(context.Background(), 1, map[string]interface{}{"input": "x"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, []interface{}{1.0, 2.0}, result.Body)
	historyRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestInfer_HistoryFailureDoesNotFailCall(t *testing.T) {
	svc, entrypointRepo, serviceRepo, client, historyRepo := newGatewayService()

	entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(activeEntrypoint(), nil)
	serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(runningService(), nil)
	client.On("Predict", mock.Anything, mock.Anything, mock.Anything).Return(map[string]interface{}{"ok": true}, nil)
	historyRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	result, err := svc.Infer(context.Background(), 1, map[string]interface{}{"input": "x"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestBuildTargetURL(t *testing.T) {
	cases := []struct {
		name       string
		baseURL    string
		entrypoint *domain.Entrypoint
		expected   string
	}{
		{"default path", "http://svc:8000", &domain.Entrypoint{}, "http://svc:8000/predict"},
		{"trailing slash on base", "http://svc:8000/", &domain.Entrypoint{}, "http://svc:8000/predict"},
		{"path field", "http://svc:8000", &domain.Entrypoint{Path: "/v1/infer"}, "http://svc:8000/v1/infer"},
		{"full path wins", "http://svc:8000", &domain.Entrypoint{Path: "/v1/infer", FullInferencePath: "v2/models/m:predict"}, "http://svc:8000/v2/models/m:predict"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, buildTargetURL(tc.baseURL, tc.entrypoint))
		})
	}
}
