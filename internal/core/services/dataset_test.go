package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mlops-hub-backend/internal/core/domain"
	"mlops-hub-backend/internal/testutil"
)

func newDatasetService() (*DatasetService, *testutil.MockDatasetRepo, *testutil.MockDatasetVersionRepo, *testutil.MockDatasetFileRepo, *testutil.MockObjectStore) {
	repo := new(testutil.MockDatasetRepo)
	versionRepo := new(testutil.MockDatasetVersionRepo)
	fileRepo := new(testutil.MockDatasetFileRepo)
	store := new(testutil.MockObjectStore)
	return NewDatasetService(repo, versionRepo, fileRepo, store), repo, versionRepo, fileRepo, store
}

func TestCreateDataset(t *testing.T) {
	svc, repo, _, _, _ := newDatasetService()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Dataset")).Return(nil)

	dataset, err := svc.Create(context.Background(), "iris", "flower measurements")
	assert.NoError(t, err)
	assert.NotEmpty(t, dataset.UUID)
	assert.Equal(t, "iris", dataset.Name)
	assert.False(t, dataset.CreatedAt.IsZero())
}

func TestCreateDataset_BlankName(t *testing.T) {
	svc, repo, _, _, _ := newDatasetService()

	_, err := svc.Create(context.Background(), "   ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDatasetName)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListDatasetsPaged_ClampsLimit(t *testing.T) {
	svc, repo, _, _, _ := newDatasetService()

	repo.On("ListPaged", mock.Anything, 100, 0).Return([]*domain.Dataset{}, 0, nil)
	_, _, err := svc.ListPaged(context.Background(), 500, 0)
	assert.NoError(t, err)

	repo.On("ListPaged", mock.Anything, 20, 10).Return([]*domain.Dataset{}, 0, nil)
	_, _, err = svc.ListPaged(context.Background(), 0, 10)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestUpdateDataset_PartialFields(t *testing.T) {
	svc, repo, _, _, _ := newDatasetService()

	existing := &domain.Dataset{ID: 1, Name: "iris", Description: "old"}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Dataset")).Return(nil)

	desc := "new description"
	updated, err := svc.Update(context.Background(), 1, nil, &desc)
	assert.NoError(t, err)
	assert.Equal(t, "iris", updated.Name)
	assert.Equal(t, "new description", updated.Description)
}

func TestDeleteDataset_CascadesVersionsAndFiles(t *testing.T) {
	svc, repo, versionRepo, fileRepo, store := newDatasetService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Dataset{ID: 1}, nil)
	versionRepo.On("ListByDataset", mock.Anything, int64(1)).Return([]*domain.DatasetVersion{
		{ID: 10, DatasetID: 1},
		{ID: 11, DatasetID: 1},
	}, nil)
	fileRepo.On("ListByVersion", mock.Anything, int64(10)).Return([]*domain.DatasetFile{
		{ID: 100, FilePath: "datasets/1/versions/a/x.csv"},
	}, nil)
	fileRepo.On("ListByVersion", mock.Anything, int64(11)).Return([]*domain.DatasetFile{}, nil)
	store.On("Delete", mock.Anything, "datasets/1/versions/a/x.csv").Return(nil)
	fileRepo.On("DeleteByVersion", mock.Anything, int64(10)).Return(nil)
	fileRepo.On("DeleteByVersion", mock.Anything, int64(11)).Return(nil)
	versionRepo.On("Delete", mock.Anything, int64(10)).Return(nil)
	versionRepo.On("Delete", mock.Anything, int64(11)).Return(nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), 1)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
	versionRepo.AssertExpectations(t)
	fileRepo.AssertExpectations(t)
}

func TestDeleteDataset_BlobFailureDoesNotAbort(t *testing.T) {
	svc, repo, versionRepo, fileRepo, store := newDatasetService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Dataset{ID: 1}, nil)
	versionRepo.On("ListByDataset", mock.Anything, int64(1)).Return([]*domain.DatasetVersion{{ID: 10}}, nil)
	fileRepo.On("ListByVersion", mock.Anything, int64(10)).Return([]*domain.DatasetFile{
		{ID: 100, FilePath: "datasets/1/versions/a/x.csv"},
	}, nil)
	store.On("Delete", mock.Anything, mock.Anything).Return(errors.New("storage unreachable"))
	fileRepo.On("DeleteByVersion", mock.Anything, int64(10)).Return(nil)
	versionRepo.On("Delete", mock.Anything, int64(10)).Return(nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), 1)
	assert.NoError(t, err)
}

func TestDeleteDataset_NotFound(t *testing.T) {
	svc, repo, versionRepo, _, _ := newDatasetService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, domain.ErrDatasetNotFound)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	versionRepo.AssertNotCalled(t, "ListByDataset", mock.Anything, mock.Anything)
}
