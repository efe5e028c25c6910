package ports

import (
	"context"

	"mlops-hub-backend/internal/core/domain"
)

type DatasetRepository interface {
	Create(ctx context.Context, dataset *domain.Dataset) error
	GetByID(ctx context.Context, id int64) (*domain.Dataset, error)
	List(ctx context.Context) ([]*domain.Dataset, error)
	ListPaged(ctx context.Context, limit, offset int) ([]*domain.Dataset, int, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Dataset, error)
	Update(ctx context.Context, dataset *domain.Dataset) error
	Delete(ctx context.Context, id int64) error
}

type DatasetVersionRepository interface {
	Create(ctx context.Context, version *domain.DatasetVersion) error
	GetByDatasetAndVersionID(ctx context.Context, datasetID int64, versionID string) (*domain.DatasetVersion, error)
	GetByDatasetAndNumber(ctx context.Context, datasetID int64, versionNumber int) (*domain.DatasetVersion, error)
	ListByDataset(ctx context.Context, datasetID int64) ([]*domain.DatasetVersion, error)
	MaxVersionNumber(ctx context.Context, datasetID int64) (int, error)
	Update(ctx context.Context, version *domain.DatasetVersion) error
	Delete(ctx context.Context, id int64) error
}

type DatasetFileRepository interface {
	Create(ctx context.Context, file *domain.DatasetFile) error
	GetByVersionAndFileID(ctx context.Context, versionID int64, fileID string) (*domain.DatasetFile, error)
	ListByVersion(ctx context.Context, versionID int64) ([]*domain.DatasetFile, error)
	Delete(ctx context.Context, id int64) error
	DeleteByVersion(ctx context.Context, versionID int64) error
}

type InferenceServiceRepository interface {
	Create(ctx context.Context, svc *domain.InferenceService) error
	GetByID(ctx context.Context, id int64) (*domain.InferenceService, error)
	GetByName(ctx context.Context, name string) (*domain.InferenceService, error)
	List(ctx context.Context) ([]*domain.InferenceService, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.InferenceService, error)
	ListByNamespace(ctx context.Context, namespace string) ([]*domain.InferenceService, error)
	Search(ctx context.Context, query string) ([]*domain.InferenceService, error)
	Update(ctx context.Context, svc *domain.InferenceService) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type EntrypointRepository interface {
	Create(ctx context.Context, ep *domain.Entrypoint) error
	GetByID(ctx context.Context, id int64) (*domain.Entrypoint, error)
	GetByName(ctx context.Context, name string) (*domain.Entrypoint, error)
	List(ctx context.Context) ([]*domain.Entrypoint, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.Entrypoint, error)
	ListByType(ctx context.Context, epType string) ([]*domain.Entrypoint, error)
	ListByModel(ctx context.Context, modelID int64) ([]*domain.Entrypoint, error)
	ListByService(ctx context.Context, serviceID int64) ([]*domain.Entrypoint, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Entrypoint, error)
	Search(ctx context.Context, query string) ([]*domain.Entrypoint, error)
	Update(ctx context.Context, ep *domain.Entrypoint) error
	Delete(ctx context.Context, id int64) error
}

type EntrypointHistoryRepository interface {
	Create(ctx context.Context, record *domain.EntrypointHistory) error
	ListByEntrypoint(ctx context.Context, entrypointID int64) ([]*domain.EntrypointHistory, error)
	CountByEntrypoint(ctx context.Context, entrypointID int64) (int64, error)
	DeleteByEntrypoint(ctx context.Context, entrypointID int64) error
}
