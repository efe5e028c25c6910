package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

type inferenceServiceRepo struct {
	pool *pgxpool.Pool
}

func NewInferenceServiceRepository(pool *pgxpool.Pool) ports.InferenceServiceRepository {
	return &inferenceServiceRepo{pool: pool}
}

const serviceColumns = "id, name, description, status, namespace, replicas, cpu, memory, image, port, base_url, tags, created_at, updated_at"

func (r *inferenceServiceRepo) Create(ctx context.Context, svc *domain.InferenceService) error {
	tagsJSON, err := json.Marshal(svc.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		INSERT INTO inference_service
			(name, description, status, namespace, replicas, cpu, memory,
			 image, port, base_url, tags, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id
	`
	err = r.pool.QueryRow(ctx, query,
		svc.Name, svc.Description, svc.Status, svc.Namespace,
		svc.Replicas, svc.CPU, svc.Memory, svc.Image, svc.Port,
		svc.BaseURL, tagsJSON, svc.CreatedAt, svc.UpdatedAt,
	).Scan(&svc.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrInferenceServiceNameConflict
		}
		return fmt.Errorf("create inference service: %w", err)
	}
	return nil
}

func (r *inferenceServiceRepo) GetByID(ctx context.Context, id int64) (*domain.InferenceService, error) {
	query := fmt.Sprintf("SELECT %s FROM inference_service WHERE id = $1", serviceColumns)
	svc, err := scanService(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInferenceServiceNotFound
		}
		return nil, fmt.Errorf("get inference service by id: %w", err)
	}
	return svc, nil
}

func (r *inferenceServiceRepo) GetByName(ctx context.Context, name string) (*domain.InferenceService, error) {
	query := fmt.Sprintf("SELECT %s FROM inference_service WHERE name = $1", serviceColumns)
	svc, err := scanService(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInferenceServiceNotFound
		}
		return nil, fmt.Errorf("get inference service by name: %w", err)
	}
	return svc, nil
}

func (r *inferenceServiceRepo) List(ctx context.Context) ([]*domain.InferenceService, error) {
	query := fmt.Sprintf("SELECT %s FROM inference_service ORDER BY created_at DESC", serviceColumns)
	return r.queryServices(ctx, query)
}

func (r *inferenceServiceRepo) ListByStatus(ctx context.Context, status string) ([]*domain.InferenceService, error) {
	query := fmt.Sprintf("SELECT %s FROM inference_service WHERE status = $1 ORDER BY created_at DESC", serviceColumns)
	return r.queryServices(ctx, query, status)
}

func (r *inferenceServiceRepo) ListByNamespace(ctx context.Context, namespace string) ([]*domain.InferenceService, error) {
	query := fmt.Sprintf("SELECT %s FROM inference_service WHERE namespace = $1 ORDER BY created_at DESC", serviceColumns)
	return r.queryServices(ctx, query, namespace)
}

func (r *inferenceServiceRepo) Search(ctx context.Context, q string) ([]*domain.InferenceService, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM inference_service
		WHERE name ILIKE '%%' || $1 || '%%' OR description ILIKE '%%' || $1 || '%%'
		ORDER BY created_at DESC
	`, serviceColumns)
	return r.queryServices(ctx, query, q)
}

func (r *inferenceServiceRepo) Update(ctx context.Context, svc *domain.InferenceService) error {
	tagsJSON, err := json.Marshal(svc.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		UPDATE inference_service
		SET name=$1, description=$2, status=$3, namespace=$4, replicas=$5,
			cpu=$6, memory=$7, image=$8, port=$9, base_url=$10, tags=$11,
			updated_at=$12
		WHERE id=$13
	`
	result, err := r.pool.Exec(ctx, query,
		svc.Name, svc.Description, svc.Status, svc.Namespace,
		svc.Replicas, svc.CPU, svc.Memory, svc.Image, svc.Port,
		svc.BaseURL, tagsJSON, svc.UpdatedAt, svc.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrInferenceServiceNameConflict
		}
		return fmt.Errorf("update inference service: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInferenceServiceNotFound
	}
	return nil
}

func (r *inferenceServiceRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := "UPDATE inference_service SET status = $1, updated_at = NOW() WHERE id = $2"
	result, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update inference service status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInferenceServiceNotFound
	}
	return nil
}

func (r *inferenceServiceRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM inference_service WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete inference service: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInferenceServiceNotFound
	}
	return nil
}

func (r *inferenceServiceRepo) queryServices(ctx context.Context, query string, args ...interface{}) ([]*domain.InferenceService, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query inference services: %w", err)
	}
	defer rows.Close()

	var services []*domain.InferenceService
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inference service row: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inference service rows: %w", err)
	}
	return services, nil
}

func scanService(row pgx.Row) (*domain.InferenceService, error) {
	svc := &domain.InferenceService{}
	var tagsJSON []byte
	err := row.Scan(
		&svc.ID, &svc.Name, &svc.Description, &svc.Status, &svc.Namespace,
		&svc.Replicas, &svc.CPU, &svc.Memory, &svc.Image, &svc.Port,
		&svc.BaseURL, &tagsJSON, &svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &svc.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	return svc, nil
}
