package domain

import "time"

const (
	ServiceStatusPending = "pending"
	ServiceStatusRunning = "running"
	ServiceStatusStopped = "stopped"
	ServiceStatusError   = "error"
)

// InferenceService is a registered backend deployment target. BaseURL is the
// forwarding target used by the gateway; the remaining resource fields
// describe the deployment and feed the optional KServe deployer.
type InferenceService struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Namespace   string     `json:"namespace"`
	Replicas    int        `json:"replicas"`
	CPU         string     `json:"cpu"`
	Memory      string     `json:"memory"`
	Image       string     `json:"image"`
	Port        int        `json:"port"`
	BaseURL     string     `json:"baseUrl"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
