package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
	"github.com/shenikar/fire_incidents_dashboard/internal/service"
)

// DBTX - общая часть *pgxpool.Pool и pgxmock, которой пользуются репозитории
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type FetchLogRepository struct {
	db DBTX
}

var _ service.FetchLogRepository = (*FetchLogRepository)(nil)

func NewFetchLogRepository(db DBTX) *FetchLogRepository {
	return &FetchLogRepository{db: db}
}

// SaveFetchRecord сохраняет запись о загрузке данных в бд
func (r *FetchLogRepository) SaveFetchRecord(ctx context.Context, record *models.FetchRecord) error {
	query := `
		INSERT INTO fetch_log (refresh_id, source, status, row_count, error, duration_ms, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		record.RefreshID.String(),
		record.Source,
		record.Status,
		record.RowCount,
		record.Error,
		record.DurationMs,
		record.FetchedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to save fetch record: %w", err)
	}
	return nil
}

// ListFetchRecords возвращает последние записи журнала загрузок
func (r *FetchLogRepository) ListFetchRecords(ctx context.Context, limit int) ([]*models.FetchRecord, error) {
	query := `
		SELECT
			id,
			refresh_id::text,
			source,
			status,
			row_count,
			error,
			duration_ms,
			fetched_at
		FROM fetch_log
		ORDER BY fetched_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fetch records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.FetchRecord, 0)
	for rows.Next() {
		record := &models.FetchRecord{}
		var refreshID string
		err := rows.Scan(
			&record.ID,
			&refreshID,
			&record.Source,
			&record.Status,
			&record.RowCount,
			&record.Error,
			&record.DurationMs,
			&record.FetchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fetch record row: %w", err)
		}
		if record.RefreshID, err = uuid.Parse(refreshID); err != nil {
			return nil, fmt.Errorf("invalid refresh id %q: %w", refreshID, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
