package services

import (
	"context"

	ports "mlops-hub-backend/internal/core/ports/output"
)

// ClusterService is a pass-through facade over the compute-cluster dashboard.
type ClusterService struct {
	client ports.ClusterClient
}

func NewClusterService(client ports.ClusterClient) *ClusterService {
	return &ClusterService{client: client}
}

func (s *ClusterService) Status(ctx context.Context) (interface{}, error) {
	return s.client.ClusterStatus(ctx)
}

func (s *ClusterService) Jobs(ctx context.Context) (interface{}, error) {
	return s.client.Jobs(ctx)
}

func (s *ClusterService) Job(ctx context.Context, jobID string) (interface{}, error) {
	return s.client.Job(ctx, jobID)
}

func (s *ClusterService) Nodes(ctx context.Context) (interface{}, error) {
	return s.client.Nodes(ctx)
}
