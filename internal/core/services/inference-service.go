package services

import (
	"context"
	"strings"
	"time"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

type InferenceServiceService struct {
	repo     ports.InferenceServiceRepository
	deployer ports.Deployer
}

func NewInferenceServiceService(repo ports.InferenceServiceRepository, deployer ports.Deployer) *InferenceServiceService {
	return &InferenceServiceService{repo: repo, deployer: deployer}
}

func (s *InferenceServiceService) Create(ctx context.Context, svc *domain.InferenceService) (*domain.InferenceService, error) {
	if strings.TrimSpace(svc.Name) == "" {
		return nil, domain.ErrInvalidInferenceServiceName
	}

	if svc.Status == "" {
		svc.Status = domain.ServiceStatusPending
	}
	if svc.Replicas <= 0 {
		svc.Replicas = 1
	}

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *InferenceServiceService) Get(ctx context.Context, id int64) (*domain.InferenceService, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *InferenceServiceService) GetByName(ctx context.Context, name string) (*domain.InferenceService, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *InferenceServiceService) List(ctx context.Context) ([]*domain.InferenceService, error) {
	return s.repo.List(ctx)
}

func (s *InferenceServiceService) ListByStatus(ctx context.Context, status string) ([]*domain.InferenceService, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *InferenceServiceService) ListByNamespace(ctx context.Context, namespace string) ([]*domain.InferenceService, error) {
	return s.repo.ListByNamespace(ctx, namespace)
}

func (s *InferenceServiceService) Search(ctx context.Context, query string) ([]*domain.InferenceService, error) {
	return s.repo.Search(ctx, query)
}

func (s *InferenceServiceService) Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.InferenceService, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		svc.Name = v.(string)
	}
	if v, ok := updates["description"]; ok && v != nil {
		svc.Description = v.(string)
	}
	if v, ok := updates["status"]; ok && v != nil {
		svc.Status = v.(string)
	}
	if v, ok := updates["namespace"]; ok && v != nil {
		svc.Namespace = v.(string)
	}
	if v, ok := updates["replicas"]; ok && v != nil {
		svc.Replicas = v.(int)
	}
	if v, ok := updates["cpu"]; ok && v != nil {
		svc.CPU = v.(string)
	}
	if v, ok := updates["memory"]; ok && v != nil {
		svc.Memory = v.(string)
	}
	if v, ok := updates["image"]; ok && v != nil {
		svc.Image = v.(string)
	}
	if v, ok := updates["port"]; ok && v != nil {
		svc.Port = v.(int)
	}
	if v, ok := updates["base_url"]; ok && v != nil {
		svc.BaseURL = v.(string)
	}
	if v, ok := updates["tags"]; ok && v != nil {
		svc.Tags = v.([]string)
	}

	svc.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *InferenceServiceService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.InferenceService, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Status = status
	svc.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *InferenceServiceService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Deploy materializes the registration on the cluster through the optional
// deployer and marks the service pending until the health sync observes it.
func (s *InferenceServiceService) Deploy(ctx context.Context, id int64) (*domain.InferenceService, error) {
	if s.deployer == nil || !s.deployer.IsAvailable() {
		return nil, domain.ErrDeployerNotAvailable
	}

	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.deployer.Deploy(ctx, svc); err != nil {
		return nil, err
	}

	return s.UpdateStatus(ctx, id, domain.ServiceStatusPending)
}

func (s *InferenceServiceService) Undeploy(ctx context.Context, id int64) (*domain.InferenceService, error) {
	if s.deployer == nil || !s.deployer.IsAvailable() {
		return nil, domain.ErrDeployerNotAvailable
	}

	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.deployer.Undeploy(ctx, svc.Namespace, svc.Name); err != nil {
		return nil, err
	}

	return s.UpdateStatus(ctx, id, domain.ServiceStatusStopped)
}
