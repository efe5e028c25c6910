// Package inference holds the HTTP client the gateway uses to forward
// requests to model-serving backends.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mlops-hub-backend/internal/config"
	ports "mlops-hub-backend/internal/core/ports/output"
)

type httpClient struct {
	client *http.Client
}

func NewClient(cfg *config.InferenceConfig) ports.InferenceClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Predict POSTs the payload as JSON and decodes the response body as a
// generic JSON value. Any transport problem, non-2xx status or undecodable
// body counts as a transport failure; response-level errors (a JSON object
// with status "error") are NOT errors here, the caller classifies those.
func (c *httpClient) Predict(ctx context.Context, url string, payload interface{}) (interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, string(data))
	}

	var result interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
