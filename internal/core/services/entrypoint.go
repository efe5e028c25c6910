package services

import (
	"context"
	"strings"
	"time"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

type EntrypointService struct {
	repo        ports.EntrypointRepository
	serviceRepo ports.InferenceServiceRepository
	history     *HistoryService
}

func NewEntrypointService(
	repo ports.EntrypointRepository,
	serviceRepo ports.InferenceServiceRepository,
	history *HistoryService,
) *EntrypointService {
	return &EntrypointService{repo: repo, serviceRepo: serviceRepo, history: history}
}

func (s *EntrypointService) Create(ctx context.Context, ep *domain.Entrypoint) (*domain.Entrypoint, error) {
	if strings.TrimSpace(ep.Name) == "" {
		return nil, domain.ErrInvalidEntrypointName
	}

	if existing, err := s.repo.GetByName(ctx, ep.Name); err == nil && existing != nil {
		return nil, domain.ErrEntrypointNameConflict
	}

	if ep.Version == "" {
		ep.Version = "1.0.0"
	}
	if ep.Type == "" {
		ep.Type = "api"
	}
	if ep.Status == "" {
		ep.Status = domain.EntrypointStatusInactive
	}
	if ep.Visibility == "" {
		ep.Visibility = "private"
	}

	if ep.InferenceServiceID != nil {
		service, err := s.serviceRepo.GetByID(ctx, *ep.InferenceServiceID)
		if err != nil {
			return nil, err
		}
		ep.InferenceServiceName = service.Name
	}

	if ep.Endpoint == "" {
		ep.Endpoint = "/api/entrypoints/" + ep.Name
	}

	now := time.Now()
	ep.CreatedAt = now
	ep.UpdatedAt = now

	if err := s.repo.Create(ctx, ep); err != nil {
		return nil, err
	}
	return ep, nil
}

func (s *EntrypointService) Get(ctx context.Context, id int64) (*domain.Entrypoint, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EntrypointService) GetByName(ctx context.Context, name string) (*domain.Entrypoint, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *EntrypointService) List(ctx context.Context) ([]*domain.Entrypoint, error) {
	return s.repo.List(ctx)
}

func (s *EntrypointService) ListByStatus(ctx context.Context, status string) ([]*domain.Entrypoint, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *EntrypointService) ListByType(ctx context.Context, epType string) ([]*domain.Entrypoint, error) {
	return s.repo.ListByType(ctx, epType)
}

func (s *EntrypointService) ListByModel(ctx context.Context, modelID int64) ([]*domain.Entrypoint, error) {
	return s.repo.ListByModel(ctx, modelID)
}

func (s *EntrypointService) ListByService(ctx context.Context, serviceID int64) ([]*domain.Entrypoint, error) {
	return s.repo.ListByService(ctx, serviceID)
}

func (s *EntrypointService) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Entrypoint, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *EntrypointService) Search(ctx context.Context, query string) ([]*domain.Entrypoint, error) {
	return s.repo.Search(ctx, query)
}

func (s *EntrypointService) Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.Entrypoint, error) {
	ep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		name := v.(string)
		if existing, err := s.repo.GetByName(ctx, name); err == nil && existing != nil && existing.ID != id {
			return nil, domain.ErrEntrypointNameConflict
		}
		ep.Name = name
	}
	if v, ok := updates["description"]; ok && v != nil {
		ep.Description = v.(string)
	}
	if v, ok := updates["version"]; ok && v != nil {
		ep.Version = v.(string)
	}
	if v, ok := updates["type"]; ok && v != nil {
		ep.Type = v.(string)
	}
	if v, ok := updates["status"]; ok && v != nil {
		ep.Status = v.(string)
	}
	if v, ok := updates["endpoint"]; ok && v != nil {
		ep.Endpoint = v.(string)
	}
	if v, ok := updates["method"]; ok && v != nil {
		ep.Method = v.(string)
	}
	if v, ok := updates["inference_service_id"]; ok && v != nil {
		serviceID := v.(int64)
		ep.InferenceServiceID = &serviceID
		if service, err := s.serviceRepo.GetByID(ctx, serviceID); err == nil {
			ep.InferenceServiceName = service.Name
		}
	}
	if v, ok := updates["path"]; ok && v != nil {
		ep.Path = v.(string)
	}
	if v, ok := updates["model_type"]; ok && v != nil {
		ep.ModelType = v.(string)
	}
	if v, ok := updates["full_inference_path"]; ok && v != nil {
		ep.FullInferencePath = v.(string)
	}
	if v, ok := updates["tags"]; ok && v != nil {
		ep.Tags = v.([]string)
	}
	if v, ok := updates["visibility"]; ok && v != nil {
		ep.Visibility = v.(string)
	}
	if v, ok := updates["deployment_config"]; ok && v != nil {
		ep.DeploymentConfig = v.(string)
	}
	if v, ok := updates["metrics_data"]; ok && v != nil {
		ep.MetricsData = v.(string)
	}

	ep.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, ep); err != nil {
		return nil, err
	}
	return ep, nil
}

// UpdateStatus flips the lifecycle status and stamps the deployment time
// when the entrypoint goes live.
func (s *EntrypointService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Entrypoint, error) {
	ep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ep.Status = status
	if status == domain.EntrypointStatusActive || status == domain.EntrypointStatusDeployed {
		now := time.Now()
		ep.LastDeployed = &now
	}
	ep.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, ep); err != nil {
		return nil, err
	}
	return ep, nil
}

// Delete removes the entrypoint and its call history. History goes first so
// an interrupted delete never leaves orphaned records.
func (s *EntrypointService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.history.DeleteByEntrypoint(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
