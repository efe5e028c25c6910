package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

type entrypointHistoryRepo struct {
	pool *pgxpool.Pool
}

func NewEntrypointHistoryRepository(pool *pgxpool.Pool) ports.EntrypointHistoryRepository {
	return &entrypointHistoryRepo{pool: pool}
}

func (r *entrypointHistoryRepo) Create(ctx context.Context, record *domain.EntrypointHistory) error {
	query := `
		INSERT INTO entrypoint_history
			(entrypoint_id, request_body, response_body, status_code,
			 status, error_message, elapsed_time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		record.EntrypointID, record.RequestBody, record.ResponseBody,
		record.StatusCode, record.Status, record.ErrorMessage,
		record.ElapsedTimeMs, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("create entrypoint history: %w", err)
	}
	return nil
}

func (r *entrypointHistoryRepo) ListByEntrypoint(ctx context.Context, entrypointID int64) ([]*domain.EntrypointHistory, error) {
	query := `
		SELECT id, entrypoint_id, request_body, response_body, status_code,
			   status, error_message, elapsed_time_ms, created_at
		FROM entrypoint_history
		WHERE entrypoint_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, entrypointID)
	if err != nil {
		return nil, fmt.Errorf("list entrypoint history: %w", err)
	}
	defer rows.Close()

	var records []*domain.EntrypointHistory
	for rows.Next() {
		h := &domain.EntrypointHistory{}
		err := rows.Scan(
			&h.ID, &h.EntrypointID, &h.RequestBody, &h.ResponseBody,
			&h.StatusCode, &h.Status, &h.ErrorMessage, &h.ElapsedTimeMs,
			&h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entrypoint history row: %w", err)
		}
		records = append(records, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entrypoint history rows: %w", err)
	}
	return records, nil
}

func (r *entrypointHistoryRepo) CountByEntrypoint(ctx context.Context, entrypointID int64) (int64, error) {
	var count int64
	query := "SELECT COUNT(*) FROM entrypoint_history WHERE entrypoint_id = $1"
	if err := r.pool.QueryRow(ctx, query, entrypointID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entrypoint history: %w", err)
	}
	return count, nil
}

func (r *entrypointHistoryRepo) DeleteByEntrypoint(ctx context.Context, entrypointID int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM entrypoint_history WHERE entrypoint_id = $1", entrypointID)
	if err != nil {
		return fmt.Errorf("delete entrypoint history: %w", err)
	}
	return nil
}
