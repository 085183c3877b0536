package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_incidents_dashboard/internal/config"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
	"github.com/shenikar/fire_incidents_dashboard/internal/service"
)

// MirrorSource читает копию таблицы хранилища из PostgreSQL
type MirrorSource struct {
	db DBTX
}

var _ service.IncidentSource = (*MirrorSource)(nil)

func NewMirrorSource(db DBTX) *MirrorSource {
	return &MirrorSource{db: db}
}

func (s *MirrorSource) Name() string {
	return config.DataSourcePostgres
}

// FetchRaw возвращает все строки таблицы fire_incidents
func (s *MirrorSource) FetchRaw(ctx context.Context) ([]models.RawIncident, error) {
	query := `
		SELECT
			incident_no,
			date_time_of_event,
			final_incident_type,
			final_incident_category,
			street_name
		FROM fire_incidents
		ORDER BY incident_no;
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fire incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.RawIncident, 0)
	for rows.Next() {
		var (
			incident   models.RawIncident
			occurredAt *time.Time
			typ        *string
			category   *string
			street     *string
		)
		if err := rows.Scan(&incident.IncidentNo, &occurredAt, &typ, &category, &street); err != nil {
			return nil, fmt.Errorf("failed to scan fire incident row: %w", err)
		}
		if occurredAt != nil {
			incident.DateTimeOfEvent = &models.BoxedTimestamp{Value: occurredAt.UTC().Format(time.RFC3339Nano)}
		}
		incident.FinalIncidentType = deref(typ)
		incident.FinalIncidentCategory = deref(category)
		incident.StreetName = deref(street)
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
