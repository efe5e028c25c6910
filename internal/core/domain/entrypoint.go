package domain

import "time"

const (
	EntrypointStatusInactive = "inactive"
	EntrypointStatusActive   = "active"
	EntrypointStatusDeployed = "deployed"
	EntrypointStatusFailed   = "failed"
)

// Entrypoint is a named, user-facing inference route bound to at most one
// inference service. Name is globally unique.
type Entrypoint struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Version              string     `json:"version"`
	Type                 string     `json:"type"`
	Status               string     `json:"status"`
	Endpoint             string     `json:"endpoint"`
	Method               string     `json:"method"`
	ModelID              *int64     `json:"modelId"`
	ModelName            string     `json:"modelName"`
	ModelType            string     `json:"modelType"`
	InferenceServiceID   *int64     `json:"inferenceServiceId"`
	InferenceServiceName string     `json:"inferenceServiceName"`
	Path                 string     `json:"path"`
	FullInferencePath    string     `json:"fullInferencePath"`
	Tags                 []string   `json:"tags"`
	Visibility           string     `json:"visibility"`
	OwnerID              *int64     `json:"ownerId"`
	OwnerUsername        string     `json:"ownerUsername"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	LastDeployed         *time.Time `json:"lastDeployed,omitempty"`
	DeploymentConfig     string     `json:"deploymentConfig"`
	MetricsData          string     `json:"metricsData"`
}

// IsInvocable reports whether the gateway may forward requests to this
// entrypoint based on its own status alone (the bound service is checked
// separately).
func (e *Entrypoint) IsInvocable() bool {
	return e.Status == EntrypointStatusActive || e.Status == EntrypointStatusDeployed
}

const (
	CallStatusSuccess = "success"
	CallStatusError   = "error"
)

// EntrypointHistory is one immutable record of a single gateway call.
type EntrypointHistory struct {
	ID            int64     `json:"id"`
	EntrypointID  int64     `json:"entrypointId"`
	RequestBody   string    `json:"requestBody"`
	ResponseBody  *string   `json:"responseBody"`
	StatusCode    int       `json:"statusCode"`
	Status        string    `json:"status"`
	ErrorMessage  *string   `json:"errorMessage"`
	ElapsedTimeMs *int64    `json:"elapsedTimeMs"`
	CreatedAt     time.Time `json:"createdAt"`
}

type EntrypointMetrics struct {
	TotalRequests      int64   `json:"totalRequests"`
	SuccessfulRequests int64   `json:"successfulRequests"`
	ErrorRequests      int64   `json:"errorRequests"`
	ErrorRate          float64 `json:"errorRate"`
	AverageLatency     float64 `json:"averageLatency"`
	TimeRangeHours     int     `json:"timeRangeHours"`
}

type DailyBucket struct {
	Date       string `json:"date"`
	Total      int64  `json:"total"`
	Successful int64  `json:"successful"`
	Errors     int64  `json:"errors"`
}

type DailyMetrics struct {
	TimeSeries []DailyBucket `json:"timeSeries"`
	Days       int           `json:"days"`
}

// InferResult is the classified outcome of a forwarded inference call. Body
// is the upstream JSON value as-is (with status defaulted on success).
type InferResult struct {
	StatusCode int
	Body       interface{}
}
