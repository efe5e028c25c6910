// Package testutil holds testify mocks for the output ports.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mlops-hub-backend/internal/core/domain"
)

// MockDatasetRepo is a mock of DatasetRepository.
type MockDatasetRepo struct {
	mock.Mock
}

func (m *MockDatasetRepo) Create(ctx context.Context, dataset *domain.Dataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *MockDatasetRepo) GetByID(ctx context.Context, id int64) (*domain.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func (m *MockDatasetRepo) List(ctx context.Context) ([]*domain.Dataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Dataset), args.Error(1)
}

func (m *MockDatasetRepo) ListPaged(ctx context.Context, limit, offset int) ([]*domain.Dataset, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Dataset), args.Int(1), args.Error(2)
}

func (m *MockDatasetRepo) SearchByName(ctx context.Context, name string) ([]*domain.Dataset, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Dataset), args.Error(1)
}

func (m *MockDatasetRepo) Update(ctx context.Context, dataset *domain.Dataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *MockDatasetRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDatasetVersionRepo is a mock of DatasetVersionRepository.
type MockDatasetVersionRepo struct {
	mock.Mock
}

func (m *MockDatasetVersionRepo) Create(ctx context.Context, version *domain.DatasetVersion) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

func (m *MockDatasetVersionRepo) GetByDatasetAndVersionID(ctx context.Context, datasetID int64, versionID string) (*domain.DatasetVersion, error) {
	args := m.Called(ctx, datasetID, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetVersion), args.Error(1)
}

func (m *MockDatasetVersionRepo) GetByDatasetAndNumber(ctx context.Context, datasetID int64, versionNumber int) (*domain.DatasetVersion, error) {
	args := m.Called(ctx, datasetID, versionNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetVersion), args.Error(1)
}

func (m *MockDatasetVersionRepo) ListByDataset(ctx context.Context, datasetID int64) ([]*domain.DatasetVersion, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DatasetVersion), args.Error(1)
}

func (m *MockDatasetVersionRepo) MaxVersionNumber(ctx context.Context, datasetID int64) (int, error) {
	args := m.Called(ctx, datasetID)
	return args.Int(0), args.Error(1)
}

func (m *MockDatasetVersionRepo) Update(ctx context.Context, version *domain.DatasetVersion) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

func (m *MockDatasetVersionRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDatasetFileRepo is a mock of DatasetFileRepository.
type MockDatasetFileRepo struct {
	mock.Mock
}

func (m *MockDatasetFileRepo) Create(ctx context.Context, file *domain.DatasetFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockDatasetFileRepo) GetByVersionAndFileID(ctx context.Context, versionID int64, fileID string) (*domain.DatasetFile, error) {
	args := m.Called(ctx, versionID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetFile), args.Error(1)
}

func (m *MockDatasetFileRepo) ListByVersion(ctx context.Context, versionID int64) ([]*domain.DatasetFile, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DatasetFile), args.Error(1)
}

func (m *MockDatasetFileRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDatasetFileRepo) DeleteByVersion(ctx context.Context, versionID int64) error {
	args := m.Called(ctx, versionID)
	return args.Error(0)
}

// MockInferenceServiceRepo is a mock of InferenceServiceRepository.
type MockInferenceServiceRepo struct {
	mock.Mock
}

func (m *MockInferenceServiceRepo) Create(ctx context.Context, svc *domain.InferenceService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockInferenceServiceRepo) GetByID(ctx context.Context, id int64) (*domain.InferenceService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InferenceService), args.Error(1)
}

func (m *MockInferenceServiceRepo) GetByName(ctx context.Context, name string) (*domain.InferenceService, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InferenceService), args.Error(1)
}

func (m *MockInferenceServiceRepo) List(ctx context.Context) ([]*domain.InferenceService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InferenceService), args.Error(1)
}

func (m *MockInferenceServiceRepo) ListByStatus(ctx context.Context, status string) ([]*domain.InferenceService, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InferenceService), args.Error(1)
}

func (m *MockInferenceServiceRepo) ListByNamespace(ctx context.Context, namespace string) ([]*domain.InferenceService, error) {
	args := m.Called(ctx, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InferenceService), args.Error(1)
}

func (m *MockInferenceServiceRepo) Search(ctx context.Context, query string) ([]*domain.InferenceService, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InferenceService), args.Error(1)
}

func (m *MockInferenceServiceRepo) Update(ctx context.Context, svc *domain.InferenceService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockInferenceServiceRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInferenceServiceRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEntrypointRepo is a mock of EntrypointRepository.
type MockEntrypointRepo struct {
	mock.Mock
}

func (m *MockEntrypointRepo) Create(ctx context.Context, ep *domain.Entrypoint) error {
	args := m.Called(ctx, ep)
	return args.Error(0)
}

func (m *MockEntrypointRepo) GetByID(ctx context.Context, id int64) (*domain.Entrypoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) GetByName(ctx context.Context, name string) (*domain.Entrypoint, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) List(ctx context.Context) ([]*domain.Entrypoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) ListByStatus(ctx context.Context, status string) ([]*domain.Entrypoint, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) ListByType(ctx context.Context, epType string) ([]*domain.Entrypoint, error) {
	args := m.Called(ctx, epType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) ListByModel(ctx context.Context, modelID int64) ([]*domain.Entrypoint, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) ListByService(ctx context.Context, serviceID int64) ([]*domain.Entrypoint, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Entrypoint, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) Search(ctx context.Context, query string) ([]*domain.Entrypoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entrypoint), args.Error(1)
}

func (m *MockEntrypointRepo) Update(ctx context.Context, ep *domain.Entrypoint) error {
	args := m.Called(ctx, ep)
	return args.Error(0)
}

func (m *MockEntrypointRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEntrypointHistoryRepo is a mock of EntrypointHistoryRepository.
type MockEntrypointHistoryRepo struct {
	mock.Mock
}

func (m *MockEntrypointHistoryRepo) Create(ctx context.Context, record *domain.EntrypointHistory) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockEntrypointHistoryRepo) ListByEntrypoint(ctx context.Context, entrypointID int64) ([]*domain.EntrypointHistory, error) {
	args := m.Called(ctx, entrypointID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EntrypointHistory), args.Error(1)
}

func (m *MockEntrypointHistoryRepo) CountByEntrypoint(ctx context.Context, entrypointID int64) (int64, error) {
	args := m.Called(ctx, entrypointID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntrypointHistoryRepo) DeleteByEntrypoint(ctx context.Context, entrypointID int64) error {
	args := m.Called(ctx, entrypointID)
	return args.Error(0)
}

// MockObjectStore is a mock of ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	args := m.Called(ctx, path, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) Get(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockObjectStore) List(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockInferenceClient is a mock of InferenceClient.
type MockInferenceClient struct {
	mock.Mock
}

func (m *MockInferenceClient) Predict(ctx context.Context, url string, payload interface{}) (interface{}, error) {
	args := m.Called(ctx, url, payload)
	return args.Get(0), args.Error(1)
}
