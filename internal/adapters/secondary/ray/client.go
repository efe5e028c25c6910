// Package ray is a pass-through client over the Ray dashboard API.
package ray

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mlops-hub-backend/internal/config"
	ports "mlops-hub-backend/internal/core/ports/output"
)

type rayClient struct {
	baseURL string
	client  *http.Client
	enabled bool
}

func NewClient(cfg *config.RayConfig) ports.ClusterClient {
	if !cfg.Enabled {
		return &rayClient{enabled: false}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &rayClient{
		baseURL: cfg.URL,
		enabled: true,
		client:  &http.Client{Timeout: timeout},
	}
}

var errDisabled = fmt.Errorf("cluster dashboard is disabled")

func (c *rayClient) ClusterStatus(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "/api/cluster_status")
}

func (c *rayClient) Jobs(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "/api/jobs/")
}

func (c *rayClient) Job(ctx context.Context, jobID string) (interface{}, error) {
	return c.get(ctx, "/api/jobs/"+jobID)
}

func (c *rayClient) Nodes(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "/nodes?view=summary")
}

func (c *rayClient) get(ctx context.Context, path string) (interface{}, error) {
	if !c.enabled {
		return nil, errDisabled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ray dashboard returned %d: %s", resp.StatusCode, string(data))
	}

	var result interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode ray response: %w", err)
	}
	return result, nil
}
