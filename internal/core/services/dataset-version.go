package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

// FileUpload carries one uploaded blob into the version manager.
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}

// DatasetVersionService owns the dataset version lifecycle state machine and
// orchestrates file storage. Blob deletion is best-effort: metadata removal
// always proceeds, orphaned blobs are tolerated.
type DatasetVersionService struct {
	versionRepo ports.DatasetVersionRepository
	fileRepo    ports.DatasetFileRepository
	datasetRepo ports.DatasetRepository
	store       ports.ObjectStore
}

func NewDatasetVersionService(
	versionRepo ports.DatasetVersionRepository,
	fileRepo ports.DatasetFileRepository,
	datasetRepo ports.DatasetRepository,
	store ports.ObjectStore,
) *DatasetVersionService {
	return &DatasetVersionService{
		versionRepo: versionRepo,
		fileRepo:    fileRepo,
		datasetRepo: datasetRepo,
		store:       store,
	}
}

// CreateVersion assigns the next version number for the dataset (max+1,
// numbers are never reused) and starts the version in DRAFT.
func (s *DatasetVersionService) CreateVersion(ctx context.Context, datasetID int64, description string) (*domain.DatasetVersion, error) {
	if _, err := s.datasetRepo.GetByID(ctx, datasetID); err != nil {
		return nil, err
	}

	maxNumber, err := s.versionRepo.MaxVersionNumber(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	version := &domain.DatasetVersion{
		VersionID:     uuid.New().String(),
		DatasetID:     datasetID,
		VersionNumber: maxNumber + 1,
		Description:   description,
		Status:        domain.VersionStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.versionRepo.Create(ctx, version); err != nil {
		return nil, err
	}
	return version, nil
}

func (s *DatasetVersionService) ListVersions(ctx context.Context, datasetID int64) ([]*domain.DatasetVersion, error) {
	return s.versionRepo.ListByDataset(ctx, datasetID)
}

func (s *DatasetVersionService) GetVersion(ctx context.Context, datasetID int64, versionID string) (*domain.DatasetVersion, error) {
	return s.versionRepo.GetByDatasetAndVersionID(ctx, datasetID, versionID)
}

func (s *DatasetVersionService) GetVersionByNumber(ctx context.Context, datasetID int64, versionNumber int) (*domain.DatasetVersion, error) {
	return s.versionRepo.GetByDatasetAndNumber(ctx, datasetID, versionNumber)
}

// CommitVersion freezes a draft. Once committed the file set is immutable.
func (s *DatasetVersionService) CommitVersion(ctx context.Context, datasetID int64, versionID string) (*domain.DatasetVersion, error) {
	version, err := s.versionRepo.GetByDatasetAndVersionID(ctx, datasetID, versionID)
	if err != nil {
		return nil, err
	}

	if version.Status != domain.VersionStatusDraft {
		return nil, domain.ErrVersionNotDraft
	}

	now := time.Now()
	version.Status = domain.VersionStatusCommitted
	version.CommittedAt = &now
	version.UpdatedAt = now

	if err := s.versionRepo.Update(ctx, version); err != nil {
		return nil, err
	}
	return version, nil
}

// ArchiveVersion retires a version from any state. Archiving an already
// archived version is a no-op, not an error.
func (s *DatasetVersionService) ArchiveVersion(ctx context.Context, datasetID int64, versionID string) (*domain.DatasetVersion, error) {
	version, err := s.versionRepo.GetByDatasetAndVersionID(ctx, datasetID, versionID)
	if err != nil {
		return nil, err
	}

	version.Status = domain.VersionStatusArchived
	version.UpdatedAt = time.Now()

	if err := s.versionRepo.Update(ctx, version); err != nil {
		return nil, err
	}
	return version, nil
}

// DeleteVersion removes a draft or archived version with all its files.
// Committed versions cannot be deleted.
func (s *DatasetVersionService) DeleteVersion(ctx context.Context, datasetID int64, versionID string) error {
	version, err := s.versionRepo.GetByDatasetAndVersionID(ctx, datasetID, versionID)
	if err != nil {
		return err
	}

	if version.Status == domain.VersionStatusCommitted {
		return domain.ErrVersionCommitted
	}

	files, err := s.fileRepo.ListByVersion(ctx, version.ID)
	if err != nil {
		return err
	}
	for _, file := range files {
		s.deleteBlob(ctx, file.FilePath)
	}
	if err := s.fileRepo.DeleteByVersion(ctx, version.ID); err != nil {
		return err
	}

	return s.versionRepo.Delete(ctx, version.ID)
}

// UploadFile stores the blob and its metadata for a draft version. The
// storage path is keyed by dataset id, version id and original filename, so
// re-uploading the same name overwrites the blob while producing a distinct
// file record.
func (s *DatasetVersionService) UploadFile(ctx context.Context, datasetID int64, versionID string, upload FileUpload) (*domain.DatasetFile, error) {
	version, err := s.versionRepo.GetByDatasetAndVersionID(ctx, datasetID, versionID)
	if err != nil {
		return nil, err
	}

	if version.Status != domain.VersionStatusDraft {
		return nil, domain.ErrVersionNotDraft
	}

	filePath := fmt.Sprintf("datasets/%d/versions/%s/%s", datasetID, versionID, upload.FileName)

	if err := s.store.Put(ctx, filePath, upload.Content, upload.ContentType); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	digest := domain.FallbackDigest(upload.FileName, upload.Size)
	if upload.Content != nil {
		digest = domain.ComputeDigest(upload.Content)
	}

	now := time.Now()
	file := &domain.DatasetFile{
		FileID:     uuid.New().String(),
		VersionID:  version.ID,
		FileName:   upload.FileName,
		FilePath:   filePath,
		FileSize:   upload.Size,
		FileFormat: domain.DetectFileFormat(upload.FileName, upload.ContentType),
		Digest:     digest,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

// GetFilesByVersion returns the version's files ordered by creation time.
func (s *DatasetVersionService) GetFilesByVersion(ctx context.Context, datasetID int64, versionID string) ([]*domain.DatasetFile, error) {
	version, err := s.versionRepo.GetByDatasetAndVersionID(ctx, datasetID, versionID)
	if err != nil {
		return nil, err
	}
	return s.fileRepo.ListByVersion(ctx, version.ID)
}

func (s *DatasetVersionService) DownloadFile(ctx context.Context, datasetID int64, versionID, fileID string) (*domain.DatasetFile, []byte, error) {
	version, err := s.versionRepo.GetByDatasetAndVersionID(ctx, datasetID, versionID)
	if err != nil {
		return nil, nil, err
	}

	file, err := s.fileRepo.GetByVersionAndFileID(ctx, version.ID, fileID)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.store.Get(ctx, file.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	return file, content, nil
}

// DeleteFile removes one file from a draft version. The blob delete is
// best-effort; the metadata delete is authoritative.
func (s *DatasetVersionService) DeleteFile(ctx context.Context, datasetID int64, versionID, fileID string) error {
	version, err := s.versionRepo.GetByDatasetAndVersionID(ctx, datasetID, versionID)
	if err != nil {
		return err
	}

	if version.Status != domain.VersionStatusDraft {
		return domain.ErrVersionNotDraft
	}

	file, err := s.fileRepo.GetByVersionAndFileID(ctx, version.ID, fileID)
	if err != nil {
		return err
	}

	s.deleteBlob(ctx, file.FilePath)

	return s.fileRepo.Delete(ctx, file.ID)
}

// DownloadLatestCommitted returns the first file of the newest committed
// version of the dataset.
func (s *DatasetVersionService) DownloadLatestCommitted(ctx context.Context, datasetID int64) (*domain.DatasetFile, []byte, error) {
	versions, err := s.versionRepo.ListByDataset(ctx, datasetID)
	if err != nil {
		return nil, nil, err
	}

	for _, version := range versions {
		if version.Status != domain.VersionStatusCommitted {
			continue
		}
		files, err := s.fileRepo.ListByVersion(ctx, version.ID)
		if err != nil {
			return nil, nil, err
		}
		if len(files) == 0 {
			continue
		}
		content, err := s.store.Get(ctx, files[0].FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("read file: %w", err)
		}
		return files[0], content, nil
	}

	return nil, nil, domain.ErrVersionNotFound
}

func (s *DatasetVersionService) deleteBlob(ctx context.Context, path string) {
	if err := s.store.Delete(ctx, path); err != nil {
		log.WithError(err).WithField("path", path).Warn("failed to delete blob from object storage")
	}
}
