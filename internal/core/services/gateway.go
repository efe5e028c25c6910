package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

const defaultInferencePath = "predict"

// GatewayService resolves an entrypoint to its backing inference service,
// forwards the request, classifies the outcome and records it. It
// distinguishes "the backend is unreachable" (transport failure, 502) from
// "the backend responded but rejected the request" (application error, 400):
// the two need different operational remedies and must stay visible
// separately in metrics.
type GatewayService struct {
	entrypointRepo ports.EntrypointRepository
	serviceRepo    ports.InferenceServiceRepository
	inference      ports.InferenceClient
	history        *HistoryService
}

func NewGatewayService(
	entrypointRepo ports.EntrypointRepository,
	serviceRepo ports.InferenceServiceRepository,
	inference ports.InferenceClient,
	history *HistoryService,
) *GatewayService {
	return &GatewayService{
		entrypointRepo: entrypointRepo,
		serviceRepo:    serviceRepo,
		inference:      inference,
		history:        history,
	}
}

// Infer forwards one request through the entrypoint. Exactly one history
// record is written for every forwarded call, whatever the outcome. No
// retries: a transport failure is classified and reported once.
func (s *GatewayService) Infer(ctx context.Context, entrypointID int64, payload map[string]interface{}) (*domain.InferResult, error) {
	entrypoint, err := s.entrypointRepo.GetByID(ctx, entrypointID)
	if err != nil {
		return nil, err
	}

	if !entrypoint.IsInvocable() {
		return nil, domain.ErrEntrypointNotActive
	}

	if entrypoint.InferenceServiceID == nil {
		return nil, domain.ErrNoInferenceService
	}

	service, err := s.serviceRepo.GetByID(ctx, *entrypoint.InferenceServiceID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(service.BaseURL) == "" {
		return nil, domain.ErrNoBaseURL
	}

	targetURL := buildTargetURL(service.BaseURL, entrypoint)

	start := time.Now()
	response, err := s.inference.Predict(ctx, targetURL, payload)
	elapsedMs := time.Since(start).Milliseconds()

	if err != nil {
		errMsg := fmt.Sprintf("%s: %v", domain.ErrBadGateway.Error(), err)
		s.history.Record(ctx, entrypointID, payload, nil, http.StatusBadGateway, domain.CallStatusError, errMsg, elapsedMs)
		return nil, fmt.Errorf("%w: %v", domain.ErrBadGateway, err)
	}

	if responseMap, ok := response.(map[string]interface{}); ok {
		if status, _ := responseMap["status"].(string); status == domain.CallStatusError {
			errMsg, _ := responseMap["message"].(string)
			s.history.Record(ctx, entrypointID, payload, response, http.StatusBadRequest, domain.CallStatusError, errMsg, elapsedMs)
			return &domain.InferResult{StatusCode: http.StatusBadRequest, Body: responseMap}, nil
		}

		if _, ok := responseMap["status"]; !ok {
			responseMap["status"] = domain.CallStatusSuccess
		}
		s.history.Record(ctx, entrypointID, payload, responseMap, http.StatusOK, domain.CallStatusSuccess, "", elapsedMs)
		return &domain.InferResult{StatusCode: http.StatusOK, Body: responseMap}, nil
	}

	// Non-object responses pass through untouched.
	s.history.Record(ctx, entrypointID, payload, response, http.StatusOK, domain.CallStatusSuccess, "", elapsedMs)
	return &domain.InferResult{StatusCode: http.StatusOK, Body: response}, nil
}

// buildTargetURL joins the service base URL and the entrypoint path as plain
// strings: one trailing slash on the base, no leading slash on the path.
// Segments are not URL-escaped; entrypoints may carry pre-encoded paths.
func buildTargetURL(baseURL string, entrypoint *domain.Entrypoint) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	path := entrypoint.FullInferencePath
	if path == "" {
		path = entrypoint.Path
	}
	if path == "" {
		path = defaultInferencePath
	}
	path = strings.TrimPrefix(path, "/")

	return baseURL + path
}
