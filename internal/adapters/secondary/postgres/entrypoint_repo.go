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

type entrypointRepo struct {
	pool *pgxpool.Pool
}

func NewEntrypointRepository(pool *pgxpool.Pool) ports.EntrypointRepository {
	return &entrypointRepo{pool: pool}
}

const entrypointColumns = `id, name, description, version, type, status, endpoint, method,
	model_id, model_name, model_type, inference_service_id, inference_service_name,
	path, full_inference_path, tags, visibility, owner_id, owner_username,
	created_at, updated_at, last_deployed, deployment_config, metrics_data`

func (r *entrypointRepo) Create(ctx context.Context, ep *domain.Entrypoint) error {
	tagsJSON, err := json.Marshal(ep.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		INSERT INTO entrypoint
			(name, description, version, type, status, endpoint, method,
			 model_id, model_name, model_type, inference_service_id,
			 inference_service_name, path, full_inference_path, tags,
			 visibility, owner_id, owner_username, created_at, updated_at,
			 last_deployed, deployment_config, metrics_data)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		RETURNING id
	`
	err = r.pool.QueryRow(ctx, query,
		ep.Name, ep.Description, ep.Version, ep.Type, ep.Status,
		ep.Endpoint, ep.Method, ep.ModelID, ep.ModelName, ep.ModelType,
		ep.InferenceServiceID, ep.InferenceServiceName, ep.Path,
		ep.FullInferencePath, tagsJSON, ep.Visibility, ep.OwnerID,
		ep.OwnerUsername, ep.CreatedAt, ep.UpdatedAt, ep.LastDeployed,
		ep.DeploymentConfig, ep.MetricsData,
	).Scan(&ep.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEntrypointNameConflict
		}
		return fmt.Errorf("create entrypoint: %w", err)
	}
	return nil
}

func (r *entrypointRepo) GetByID(ctx context.Context, id int64) (*domain.Entrypoint, error) {
	query := fmt.Sprintf("SELECT %s FROM entrypoint WHERE id = $1", entrypointColumns)
	ep, err := scanEntrypoint(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntrypointNotFound
		}
		return nil, fmt.Errorf("get entrypoint by id: %w", err)
	}
	return ep, nil
}

func (r *entrypointRepo) GetByName(ctx context.Context, name string) (*domain.Entrypoint, error) {
	query := fmt.Sprintf("SELECT %s FROM entrypoint WHERE name = $1", entrypointColumns)
	ep, err := scanEntrypoint(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntrypointNotFound
		}
		return nil, fmt.Errorf("get entrypoint by name: %w", err)
	}
	return ep, nil
}

func (r *entrypointRepo) List(ctx context.Context) ([]*domain.Entrypoint, error) {
	query := fmt.Sprintf("SELECT %s FROM entrypoint ORDER BY created_at DESC", entrypointColumns)
	return r.queryEntrypoints(ctx, query)
}

func (r *entrypointRepo) ListByStatus(ctx context.Context, status string) ([]*domain.Entrypoint, error) {
	query := fmt.Sprintf("SELECT %s FROM entrypoint WHERE status = $1 ORDER BY created_at DESC", entrypointColumns)
	return r.queryEntrypoints(ctx, query, status)
}

func (r *entrypointRepo) ListByType(ctx context.Context, epType string) ([]*domain.Entrypoint, error) {
	query := fmt.Sprintf("SELECT %s FROM entrypoint WHERE type = $1 ORDER BY created_at DESC", entrypointColumns)
	return r.queryEntrypoints(ctx, query, epType)
}

func (r *entrypointRepo) ListByModel(ctx context.Context, modelID int64) ([]*domain.Entrypoint, error) {
	query := fmt.Sprintf("SELECT %s FROM entrypoint WHERE model_id = $1 ORDER BY created_at DESC", entrypointColumns)
	return r.queryEntrypoints(ctx, query, modelID)
}

func (r *entrypointRepo) ListByService(ctx context.Context, serviceID int64) ([]*domain.Entrypoint, error) {
	query := fmt.Sprintf("SELECT %s FROM entrypoint WHERE inference_service_id = $1 ORDER BY created_at DESC", entrypointColumns)
	return r.queryEntrypoints(ctx, query, serviceID)
}

func (r *entrypointRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Entrypoint, error) {
	query := fmt.Sprintf("SELECT %s FROM entrypoint WHERE owner_id = $1 ORDER BY created_at DESC", entrypointColumns)
	return r.queryEntrypoints(ctx, query, ownerID)
}

func (r *entrypointRepo) Search(ctx context.Context, q string) ([]*domain.Entrypoint, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM entrypoint
		WHERE name ILIKE '%%' || $1 || '%%' OR description ILIKE '%%' || $1 || '%%'
		ORDER BY created_at DESC
	`, entrypointColumns)
	return r.queryEntrypoints(ctx, query, q)
}

func (r *entrypointRepo) Update(ctx context.Context, ep *domain.Entrypoint) error {
	tagsJSON, err := json.Marshal(ep.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		UPDATE entrypoint
		SET name=$1, description=$2, version=$3, type=$4, status=$5,
			endpoint=$6, method=$7, model_id=$8, model_name=$9, model_type=$10,
			inference_service_id=$11, inference_service_name=$12, path=$13,
			full_inference_path=$14, tags=$15, visibility=$16,
			last_deployed=$17, deployment_config=$18, metrics_data=$19,
			updated_at=$20
		WHERE id=$21
	`
	result, err := r.pool.Exec(ctx, query,
		ep.Name, ep.Description, ep.Version, ep.Type, ep.Status,
		ep.Endpoint, ep.Method, ep.ModelID, ep.ModelName, ep.ModelType,
		ep.InferenceServiceID, ep.InferenceServiceName, ep.Path,
		ep.FullInferencePath, tagsJSON, ep.Visibility, ep.LastDeployed,
		ep.DeploymentConfig, ep.MetricsData, ep.UpdatedAt, ep.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEntrypointNameConflict
		}
		return fmt.Errorf("update entrypoint: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEntrypointNotFound
	}
	return nil
}

func (r *entrypointRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM entrypoint WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete entrypoint: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEntrypointNotFound
	}
	return nil
}

func (r *entrypointRepo) queryEntrypoints(ctx context.Context, query string, args ...interface{}) ([]*domain.Entrypoint, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entrypoints: %w", err)
	}
	defer rows.Close()

	var entrypoints []*domain.Entrypoint
	for rows.Next() {
		ep, err := scanEntrypoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entrypoint row: %w", err)
		}
		entrypoints = append(entrypoints, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entrypoint rows: %w", err)
	}
	return entrypoints, nil
}

func scanEntrypoint(row pgx.Row) (*domain.Entrypoint, error) {
	ep := &domain.Entrypoint{}
	var tagsJSON []byte
	err := row.Scan(
		&ep.ID, &ep.Name, &ep.Description, &ep.Version, &ep.Type,
		&ep.Status, &ep.Endpoint, &ep.Method, &ep.ModelID, &ep.ModelName,
		&ep.ModelType, &ep.InferenceServiceID, &ep.InferenceServiceName,
		&ep.Path, &ep.FullInferencePath, &tagsJSON, &ep.Visibility,
		&ep.OwnerID, &ep.OwnerUsername, &ep.CreatedAt, &ep.UpdatedAt,
		&ep.LastDeployed, &ep.DeploymentConfig, &ep.MetricsData,
	)
	if err != nil {
		return nil, err
	}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &ep.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	return ep, nil
}
