package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

// DatasetService is the thin CRUD registry for datasets. Deleting a dataset
// cascades to its versions and files, with best-effort blob cleanup.
type DatasetService struct {
	repo        ports.DatasetRepository
	versionRepo ports.DatasetVersionRepository
	fileRepo    ports.DatasetFileRepository
	store       ports.ObjectStore
}

func NewDatasetService(
	repo ports.DatasetRepository,
	versionRepo ports.DatasetVersionRepository,
	fileRepo ports.DatasetFileRepository,
	store ports.ObjectStore,
) *DatasetService {
	return &DatasetService{
		repo:        repo,
		versionRepo: versionRepo,
		fileRepo:    fileRepo,
		store:       store,
	}
}

func (s *DatasetService) Create(ctx context.Context, name, description string) (*domain.Dataset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidDatasetName
	}

	now := time.Now()
	dataset := &domain.Dataset{
		UUID:        uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, dataset); err != nil {
		return nil, err
	}
	return dataset, nil
}

func (s *DatasetService) Get(ctx context.Context, id int64) (*domain.Dataset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DatasetService) List(ctx context.Context) ([]*domain.Dataset, error) {
	return s.repo.List(ctx)
}

func (s *DatasetService) ListPaged(ctx context.Context, limit, offset int) ([]*domain.Dataset, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.ListPaged(ctx, limit, offset)
}

func (s *DatasetService) Search(ctx context.Context, name string) ([]*domain.Dataset, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *DatasetService) Update(ctx context.Context, id int64, name, description *string) (*domain.Dataset, error) {
	dataset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		dataset.Name = *name
	}
	if description != nil {
		dataset.Description = *description
	}
	dataset.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, dataset); err != nil {
		return nil, err
	}
	return dataset, nil
}

// Delete removes the dataset with all versions and files. Blob cleanup is
// best-effort; metadata removal always proceeds.
func (s *DatasetService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	versions, err := s.versionRepo.ListByDataset(ctx, id)
	if err != nil {
		return err
	}
	for _, version := range versions {
		files, err := s.fileRepo.ListByVersion(ctx, version.ID)
		if err != nil {
			return err
		}
		for _, file := range files {
			if err := s.store.Delete(ctx, file.FilePath); err != nil {
				log.WithError(err).WithField("path", file.FilePath).Warn("failed to delete blob from object storage")
			}
		}
		if err := s.fileRepo.DeleteByVersion(ctx, version.ID); err != nil {
			return err
		}
		if err := s.versionRepo.Delete(ctx, version.ID); err != nil {
			return err
		}
	}

	return s.repo.Delete(ctx, id)
}
