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

type datasetFileRepo struct {
	pool *pgxpool.Pool
}

func NewDatasetFileRepository(pool *pgxpool.Pool) ports.DatasetFileRepository {
	return &datasetFileRepo{pool: pool}
}

const fileColumns = "id, file_id, version_id, file_name, file_path, file_size, file_format, digest, created_at, updated_at"

func (r *datasetFileRepo) Create(ctx context.Context, file *domain.DatasetFile) error {
	query := `
		INSERT INTO dataset_file
			(file_id, version_id, file_name, file_path, file_size,
			 file_format, digest, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		file.FileID, file.VersionID, file.FileName, file.FilePath,
		file.FileSize, file.FileFormat, file.Digest,
		file.CreatedAt, file.UpdatedAt,
	).Scan(&file.ID)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	return nil
}

func (r *datasetFileRepo) GetByVersionAndFileID(ctx context.Context, versionID int64, fileID string) (*domain.DatasetFile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM dataset_file
		WHERE version_id = $1 AND file_id = $2
	`, fileColumns)
	f, err := scanFile(r.pool.QueryRow(ctx, query, versionID, fileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("get dataset file: %w", err)
	}
	return f, nil
}

func (r *datasetFileRepo) ListByVersion(ctx context.Context, versionID int64) ([]*domain.DatasetFile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM dataset_file
		WHERE version_id = $1
		ORDER BY created_at ASC
	`, fileColumns)
	rows, err := r.pool.Query(ctx, query, versionID)
	if err != nil {
		return nil, fmt.Errorf("list dataset files: %w", err)
	}
	defer rows.Close()

	var files []*domain.DatasetFile
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dataset file row: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dataset file rows: %w", err)
	}
	return files, nil
}

func (r *datasetFileRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM dataset_file WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete dataset file: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (r *datasetFileRepo) DeleteByVersion(ctx context.Context, versionID int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM dataset_file WHERE version_id = $1", versionID)
	if err != nil {
		return fmt.Errorf("delete dataset files by version: %w", err)
	}
	return nil
}

func scanFile(row pgx.Row) (*domain.DatasetFile, error) {
	f := &domain.DatasetFile{}
	err := row.Scan(
		&f.ID, &f.FileID, &f.VersionID, &f.FileName, &f.FilePath,
		&f.FileSize, &f.FileFormat, &f.Digest, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}
