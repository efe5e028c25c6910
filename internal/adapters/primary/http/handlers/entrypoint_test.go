package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mlops-hub-backend/internal/core/domain"
)

func svcIDPtr(v int64) *int64 { return &v }

func TestCreateEntrypointEndpoint(t *testing.T) {
	m, r := setupRouter()

	m.entrypointRepo.On("GetByName", mock.Anything, "iris-ep").Return(nil, domain.ErrEntrypointNotFound)
	m.entrypointRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Entrypoint")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"name": "iris-ep"})
	req, _ := http.NewRequest("POST", "/api/entrypoints", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "iris-ep", resp["name"])
	assert.Equal(t, "inactive", resp["status"])
}

func TestCreateEntrypointEndpoint_DuplicateName(t *testing.T) {
	m, r := setupRouter()

	m.entrypointRepo.On("GetByName", mock.Anything, "iris-ep").Return(&domain.Entrypoint{ID: 3, Name: "iris-ep"}, nil)

	body, _ := json.Marshal(map[string]interface{}{"name": "iris-ep"})
	req, _ := http.NewRequest("POST", "/api/entrypoints", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetEntrypoint_NotFound(t *testing.T) {
	m, r := setupRouter()

	m.entrypointRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrEntrypointNotFound)

	req, _ := http.NewRequest("GET", "/api/entrypoints/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEntrypoint_InvalidID(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/entrypoints/not-a-number", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEntrypoints_ByName(t *testing.T) {
	m, r := setupRouter()

	m.entrypointRepo.On("GetByName", mock.Anything, "iris-ep").Return(&domain.Entrypoint{ID: 1, Name: "iris-ep"}, nil)

	req, _ := http.NewRequest("GET", "/api/entrypoints?name=iris-ep", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "iris-ep", resp["name"])
}

func TestListEntrypoints_ByStatus(t *testing.T) {
	m, r := setupRouter()

	m.entrypointRepo.On("ListByStatus", mock.Anything, "active").Return([]*domain.Entrypoint{{ID: 1}}, nil)

	req, _ := http.NewRequest("GET", "/api/entrypoints?status=active", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.entrypointRepo.AssertCalled(t, "ListByStatus", mock.Anything, "active")
}

func TestInferEndpoint_RelaysUpstreamCode(t *testing.T) {
	m, r := setupRouter()

	ep := &domain.Entrypoint{ID: 1, Status: domain.EntrypointStatusActive, InferenceServiceID: svcIDPtr(2)}
	m.entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(ep, nil)
	m.serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.InferenceService{ID: 2, BaseURL: "http://backend:8000"}, nil)
	m.client.On("Predict", mock.Anything, mock.Anything, mock.Anything).Return(map[string]interface{}{
		"status":  "error",
		"message": "bad input",
	}, nil)
	m.historyRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"input": []float64{1, 2, 3}})
	req, _ := http.NewRequest("POST", "/api/entrypoints/1/infer", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "bad input", resp["message"])
}

func TestInferEndpoint_InactiveEntrypoint(t *testing.T) {
	m, r := setupRouter()

	ep := &domain.Entrypoint{ID: 1, Status: domain.EntrypointStatusInactive}
	m.entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(ep, nil)

	body, _ := json.Marshal(map[string]interface{}{"input": "x"})
	req, _ := http.NewRequest("POST", "/api/entrypoints/1/infer", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "error", resp["status"])
}

func TestInferEndpoint_TransportFailure(t *testing.T) {
	m, r := setupRouter()

	ep := &domain.Entrypoint{ID: 1, Status: domain.EntrypointStatusActive, InferenceServiceID: svcIDPtr(2)}
	m.entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(ep, nil)
	m.serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.InferenceService{ID: 2, BaseURL: "http://backend:8000"}, nil)
	m.client.On("Predict", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	m.historyRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"input": "x"})
	req, _ := http.NewRequest("POST", "/api/entrypoints/1/infer", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	m.historyRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestGetHistoryEndpoint_FailureReturnsEmptyList(t *testing.T) {
	m, r := setupRouter()

	m.historyRepo.On("ListByEntrypoint", mock.Anything, int64(1)).Return(nil, errors.New("db down"))

	req, _ := http.NewRequest("GET", "/api/entrypoints/1/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetHistoryCountEndpoint(t *testing.T) {
	m, r := setupRouter()

	m.historyRepo.On("CountByEntrypoint", mock.Anything, int64(1)).Return(int64(7), nil)

	req, _ := http.NewRequest("GET", "/api/entrypoints/1/history/count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(7), resp["count"])
}

func TestGetEntrypointMetricsEndpoint_InvalidHours(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/entrypoints/1/metrics?hours=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEntrypointEndpoint(t *testing.T) {
	m, r := setupRouter()

	m.entrypointRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Entrypoint{ID: 1}, nil)
	m.historyRepo.On("DeleteByEntrypoint", mock.Anything, int64(1)).Return(nil)
	m.entrypointRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/entrypoints/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.historyRepo.AssertCalled(t, "DeleteByEntrypoint", mock.Anything, int64(1))
}
