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

type datasetRepo struct {
	pool *pgxpool.Pool
}

func NewDatasetRepository(pool *pgxpool.Pool) ports.DatasetRepository {
	return &datasetRepo{pool: pool}
}

const datasetColumns = "id, uuid, name, description, created_at, updated_at"

func (r *datasetRepo) Create(ctx context.Context, dataset *domain.Dataset) error {
	query := `
		INSERT INTO dataset (uuid, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		dataset.UUID, dataset.Name, dataset.Description,
		dataset.CreatedAt, dataset.UpdatedAt,
	).Scan(&dataset.ID)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	return nil
}

func (r *datasetRepo) GetByID(ctx context.Context, id int64) (*domain.Dataset, error) {
	query := fmt.Sprintf("SELECT %s FROM dataset WHERE id = $1", datasetColumns)
	d, err := scanDataset(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDatasetNotFound
		}
		return nil, fmt.Errorf("get dataset by id: %w", err)
	}
	return d, nil
}

func (r *datasetRepo) List(ctx context.Context) ([]*domain.Dataset, error) {
	query := fmt.Sprintf("SELECT %s FROM dataset ORDER BY created_at DESC", datasetColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	defer rows.Close()

	return collectDatasets(rows)
}

func (r *datasetRepo) ListPaged(ctx context.Context, limit, offset int) ([]*domain.Dataset, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dataset").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count datasets: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM dataset
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, datasetColumns)
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list datasets paged: %w", err)
	}
	defer rows.Close()

	datasets, err := collectDatasets(rows)
	if err != nil {
		return nil, 0, err
	}
	return datasets, total, nil
}

func (r *datasetRepo) SearchByName(ctx context.Context, name string) ([]*domain.Dataset, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM dataset
		WHERE name ILIKE '%%' || $1 || '%%'
		ORDER BY created_at DESC
	`, datasetColumns)
	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("search datasets: %w", err)
	}
	defer rows.Close()

	return collectDatasets(rows)
}

func (r *datasetRepo) Update(ctx context.Context, dataset *domain.Dataset) error {
	query := `
		UPDATE dataset
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := r.pool.Exec(ctx, query,
		dataset.Name, dataset.Description, dataset.UpdatedAt, dataset.ID,
	)
	if err != nil {
		return fmt.Errorf("update dataset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDatasetNotFound
	}
	return nil
}

func (r *datasetRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM dataset WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete dataset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDatasetNotFound
	}
	return nil
}

func scanDataset(row pgx.Row) (*domain.Dataset, error) {
	d := &domain.Dataset{}
	err := row.Scan(&d.ID, &d.UUID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func collectDatasets(rows pgx.Rows) ([]*domain.Dataset, error) {
	var datasets []*domain.Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dataset row: %w", err)
		}
		datasets = append(datasets, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dataset rows: %w", err)
	}
	return datasets, nil
}
