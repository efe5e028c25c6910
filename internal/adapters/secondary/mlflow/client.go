// Package mlflow is a thin client over the MLflow REST API. Responses are
// passed through as generic JSON values; this service does not model MLflow
// entities.
package mlflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mlops-hub-backend/internal/config"
	ports "mlops-hub-backend/internal/core/ports/output"
)

type mlflowClient struct {
	baseURL string
	client  *http.Client
	enabled bool
}

func NewClient(cfg *config.MLflowConfig) ports.ExperimentTracker {
	if !cfg.Enabled {
		return &mlflowClient{enabled: false}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &mlflowClient{
		baseURL: cfg.URL,
		enabled: true,
		client:  &http.Client{Timeout: timeout},
	}
}

var errDisabled = fmt.Errorf("experiment tracking is disabled")

func (c *mlflowClient) CreateExperiment(ctx context.Context, name string) (string, error) {
	result, err := c.post(ctx, "/api/2.0/mlflow/experiments/create", map[string]interface{}{
		"name": name,
	})
	if err != nil {
		return "", err
	}

	if m, ok := result.(map[string]interface{}); ok {
		if id, ok := m["experiment_id"].(string); ok {
			return id, nil
		}
	}
	return "", fmt.Errorf("create experiment: missing experiment_id in response")
}

func (c *mlflowClient) GetExperiment(ctx context.Context, experimentID string) (interface{}, error) {
	return c.get(ctx, "/api/2.0/mlflow/experiments/get", url.Values{
		"experiment_id": {experimentID},
	})
}

func (c *mlflowClient) ListExperiments(ctx context.Context) (interface{}, error) {
	return c.post(ctx, "/api/2.0/mlflow/experiments/search", map[string]interface{}{
		"max_results": 1000,
	})
}

func (c *mlflowClient) SearchExperiments(ctx context.Context, filter string) (interface{}, error) {
	return c.post(ctx, "/api/2.0/mlflow/experiments/search", map[string]interface{}{
		"filter":      filter,
		"max_results": 1000,
	})
}

func (c *mlflowClient) CreateRun(ctx context.Context, experimentID string) (interface{}, error) {
	return c.post(ctx, "/api/2.0/mlflow/runs/create", map[string]interface{}{
		"experiment_id": experimentID,
		"start_time":    time.Now().UnixMilli(),
	})
}

func (c *mlflowClient) GetRun(ctx context.Context, runID string) (interface{}, error) {
	return c.get(ctx, "/api/2.0/mlflow/runs/get", url.Values{
		"run_id": {runID},
	})
}

func (c *mlflowClient) SearchRuns(ctx context.Context, experimentID, filter string) (interface{}, error) {
	body := map[string]interface{}{
		"experiment_ids": []string{experimentID},
		"max_results":    1000,
	}
	if filter != "" {
		body["filter"] = filter
	}
	return c.post(ctx, "/api/2.0/mlflow/runs/search", body)
}

func (c *mlflowClient) MetricHistory(ctx context.Context, runID, metricKey string) (interface{}, error) {
	return c.get(ctx, "/api/2.0/mlflow/metrics/get-history", url.Values{
		"run_id":     {runID},
		"metric_key": {metricKey},
	})
}

func (c *mlflowClient) SearchRegisteredModels(ctx context.Context, filter string) (interface{}, error) {
	params := url.Values{"max_results": {"1000"}}
	if filter != "" {
		params.Set("filter", filter)
	}
	return c.get(ctx, "/api/2.0/mlflow/registered-models/search", params)
}

func (c *mlflowClient) get(ctx context.Context, path string, params url.Values) (interface{}, error) {
	if !c.enabled {
		return nil, errDisabled
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *mlflowClient) post(ctx context.Context, path string, body map[string]interface{}) (interface{}, error) {
	if !c.enabled {
		return nil, errDisabled
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *mlflowClient) do(req *http.Request) (interface{}, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("mlflow returned %d: %s", resp.StatusCode, string(data))
	}

	var result interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode mlflow response: %w", err)
	}
	return result, nil
}
