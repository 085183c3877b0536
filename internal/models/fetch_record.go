package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	FetchStatusSuccess = "success"
	FetchStatusFailed  = "failed"
)

// FetchRecord представляет запись журнала загрузок данных из источника
type FetchRecord struct {
	ID         int64     `json:"id"`
	RefreshID  uuid.UUID `json:"refresh_id"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	RowCount   int       `json:"row_count"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// RefreshStatus - итог последних обновлений данных дашборда
type RefreshStatus struct {
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}
