package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

type datasetVersionRepo struct {
	pool *pgxpool.Pool
}

func NewDatasetVersionRepository(pool *pgxpool.Pool) ports.DatasetVersionRepository {
	return &datasetVersionRepo{pool: pool}
}

const versionColumns = "id, version_id, dataset_id, version_number, description, status, created_at, updated_at, committed_at"

func (r *datasetVersionRepo) Create(ctx context.Context, version *domain.DatasetVersion) error {
	query := `
		INSERT INTO dataset_version
			(version_id, dataset_id, version_number, description, status,
			 created_at, updated_at, committed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		version.VersionID, version.DatasetID, version.VersionNumber,
		version.Description, string(version.Status),
		version.CreatedAt, version.UpdatedAt, version.CommittedAt,
	).Scan(&version.ID)
	if err != nil {
		return fmt.Errorf("create dataset version: %w", err)
	}
	return nil
}

func (r *datasetVersionRepo) GetByDatasetAndVersionID(ctx context.Context, datasetID int64, versionID string) (*domain.DatasetVersion, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM dataset_version
		WHERE dataset_id = $1 AND version_id = $2
	`, versionColumns)
	v, err := scanVersion(r.pool.QueryRow(ctx, query, datasetID, versionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVersionNotFound
		}
		return nil, fmt.Errorf("get dataset version: %w", err)
	}
	return v, nil
}

func (r *datasetVersionRepo) GetByDatasetAndNumber(ctx context.Context, datasetID int64, versionNumber int) (*domain.DatasetVersion, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM dataset_version
		WHERE dataset_id = $1 AND version_number = $2
	`, versionColumns)
	v, err := scanVersion(r.pool.QueryRow(ctx, query, datasetID, versionNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVersionNotFound
		}
		return nil, fmt.Errorf("get dataset version by number: %w", err)
	}
	return v, nil
}

func (r *datasetVersionRepo) ListByDataset(ctx context.Context, datasetID int64) ([]*domain.DatasetVersion, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM dataset_version
		WHERE dataset_id = $1
		ORDER BY version_number DESC
	`, versionColumns)
	rows, err := r.pool.Query(ctx, query, datasetID)
	if err != nil {
		return nil, fmt.Errorf("list dataset versions: %w", err)
	}
	defer rows.Close()

	var versions []*domain.DatasetVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dataset version row: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dataset version rows: %w", err)
	}
	return versions, nil
}

// MaxVersionNumber returns 0 when the dataset has no versions. Version
// numbers are never reused, including after deletes, so callers must only
// ever assign max+1.
func (r *datasetVersionRepo) MaxVersionNumber(ctx context.Context, datasetID int64) (int, error) {
	var max int
	query := "SELECT COALESCE(MAX(version_number), 0) FROM dataset_version WHERE dataset_id = $1"
	if err := r.pool.QueryRow(ctx, query, datasetID).Scan(&max); err != nil {
		return 0, fmt.Errorf("max version number: %w", err)
	}
	return max, nil
}

func (r *datasetVersionRepo) Update(ctx context.Context, version *domain.DatasetVersion) error {
	query := `
		UPDATE dataset_version
		SET description = $1, status = $2, updated_at = $3, committed_at = $4
		WHERE id = $5
	`
	result, err := r.pool.Exec(ctx, query,
		version.Description, string(version.Status),
		version.UpdatedAt, version.CommittedAt, version.ID,
	)
	if err != nil {
		return fmt.Errorf("update dataset version: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVersionNotFound
	}
	return nil
}

func (r *datasetVersionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM dataset_version WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete dataset version: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVersionNotFound
	}
	return nil
}

func scanVersion(row pgx.Row) (*domain.DatasetVersion, error) {
	v := &domain.DatasetVersion{}
	var status string
	err := row.Scan(
		&v.ID, &v.VersionID, &v.DatasetID, &v.VersionNumber,
		&v.Description, &status, &v.CreatedAt, &v.UpdatedAt, &v.CommittedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Status = domain.VersionStatus(status)
	return v, nil
}
