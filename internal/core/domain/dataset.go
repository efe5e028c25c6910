package domain

import "time"

type VersionStatus string

const (
	VersionStatusDraft     VersionStatus = "DRAFT"
	VersionStatusCommitted VersionStatus = "COMMITTED"
	VersionStatusArchived  VersionStatus = "ARCHIVED"
)

type Dataset struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DatasetVersion is one snapshot of a dataset's files. VersionID is the
// externally visible token; ID is the internal row id. File mutation is
// gated on Status == DRAFT.
type DatasetVersion struct {
	ID            int64         `json:"id"`
	VersionID     string        `json:"versionId"`
	DatasetID     int64         `json:"datasetId"`
	VersionNumber int           `json:"versionNumber"`
	Description   string        `json:"description"`
	Status        VersionStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	CommittedAt   *time.Time    `json:"committedAt,omitempty"`
}

// CanTransitionTo reports whether the version may move to the given status.
// DRAFT -> COMMITTED, DRAFT -> ARCHIVED, COMMITTED -> ARCHIVED. Re-archiving
// an archived version is allowed (no-op).
func (v *DatasetVersion) CanTransitionTo(target VersionStatus) bool {
	switch target {
	case VersionStatusCommitted:
		return v.Status == VersionStatusDraft
	case VersionStatusArchived:
		return true
	default:
		return false
	}
}

type DatasetFile struct {
	ID         int64     `json:"id"`
	FileID     string    `json:"fileId"`
	VersionID  int64     `json:"versionId"`
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	FileSize   int64     `json:"fileSize"`
	FileFormat string    `json:"fileFormat"`
	Digest     string    `json:"digest"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
