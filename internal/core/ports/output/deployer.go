package ports

import (
	"context"

	"mlops-hub-backend/internal/core/domain"
)

type DeploymentStatus struct {
	Ready bool
	URL   string
}

// Deployer materializes an inference-service registration as a serving
// workload on the cluster. Optional; IsAvailable gates every call.
type Deployer interface {
	IsAvailable() bool
	Deploy(ctx context.Context, svc *domain.InferenceService) error
	Undeploy(ctx context.Context, namespace, name string) error
	Status(ctx context.Context, namespace, name string) (*DeploymentStatus, error)
}
