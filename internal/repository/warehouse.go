package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/fire_incidents_dashboard/internal/config"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
	"github.com/shenikar/fire_incidents_dashboard/internal/service"
	bq "google.golang.org/api/bigquery/v2"
	"google.golang.org/api/googleapi"
)

const (
	queryWaitMs = 10000
	pageSize    = 10000
)

// WarehouseSource выполняет фиксированный запрос только на чтение к таблице BigQuery
type WarehouseSource struct {
	svc       *bq.Service
	projectID string
	query     string
}

var _ service.IncidentSource = (*WarehouseSource)(nil)

func NewWarehouseSource(svc *bq.Service, projectID, dataset, table string) *WarehouseSource {
	return &WarehouseSource{
		svc:       svc,
		projectID: projectID,
		query: fmt.Sprintf(`
			SELECT Incident_No, Date_Time_Of_Event, Final_Incident_Type, Final_Incident_Category, Street_Name
			FROM `+"`%s.%s.%s`", projectID, dataset, table),
	}
}

func (s *WarehouseSource) Name() string {
	return config.DataSourceBigQuery
}

// FetchRaw запускает запрос, дожидается завершения задания и собирает все страницы результата
func (s *WarehouseSource) FetchRaw(ctx context.Context) ([]models.RawIncident, error) {
	resp, err := s.svc.Jobs.Query(s.projectID, &bq.QueryRequest{
		Query:        s.query,
		UseLegacySql: googleapi.Bool(false),
		TimeoutMs:    queryWaitMs,
		MaxResults:   pageSize,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to run warehouse query: %w", err)
	}

	schema := resp.Schema
	rows := resp.Rows
	complete := resp.JobComplete
	pageToken := resp.PageToken
	jobRef := resp.JobReference

	for !complete || pageToken != "" {
		if jobRef == nil {
			return nil, errors.New("warehouse query returned no job reference")
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		call := s.svc.Jobs.GetQueryResults(jobRef.ProjectId, jobRef.JobId).
			MaxResults(pageSize).
			Context(ctx)
		if jobRef.Location != "" {
			call = call.Location(jobRef.Location)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		} else {
			call = call.TimeoutMs(queryWaitMs)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get warehouse query results: %w", err)
		}
		if !page.JobComplete {
			continue
		}
		complete = true
		if schema == nil {
			schema = page.Schema
		}
		rows = append(rows, page.Rows...)
		pageToken = page.PageToken
	}

	if schema == nil {
		return []models.RawIncident{}, nil
	}

	incidents := make([]models.RawIncident, 0, len(rows))
	for i, row := range rows {
		incident, err := rowToIncident(schema.Fields, row)
		if err != nil {
			return nil, fmt.Errorf("failed to map warehouse row %d: %w", i, err)
		}
		incidents = append(incidents, incident)
	}
	return incidents, nil
}

// rowToIncident сопоставляет ячейки строки с колонками по имени поля схемы
func rowToIncident(fields []*bq.TableFieldSchema, row *bq.TableRow) (models.RawIncident, error) {
	var incident models.RawIncident
	for i, field := range fields {
		if i >= len(row.F) {
			break
		}
		value := row.F[i].V
		switch field.Name {
		case "Incident_No":
			incident.IncidentNo = cellString(value)
		case "Date_Time_Of_Event":
			box, err := boxTimestamp(field.Type, value)
			if err != nil {
				return models.RawIncident{}, err
			}
			incident.DateTimeOfEvent = box
		case "Final_Incident_Type":
			incident.FinalIncidentType = cellString(value)
		case "Final_Incident_Category":
			incident.FinalIncidentCategory = cellString(value)
		case "Street_Name":
			incident.StreetName = cellString(value)
		}
	}
	return incident, nil
}

// boxTimestamp упаковывает значение даты в {"value": ...}.
// TIMESTAMP приходит как секунды эпохи и переводится в RFC 3339, NULL оставляет поле пустым.
func boxTimestamp(fieldType string, value any) (*models.BoxedTimestamp, error) {
	if value == nil {
		return nil, nil
	}
	raw := cellString(value)
	if !strings.EqualFold(fieldType, "TIMESTAMP") {
		return &models.BoxedTimestamp{Value: raw}, nil
	}

	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESTAMP cell %q: %w", raw, err)
	}
	whole, frac := math.Modf(seconds)
	t := time.Unix(int64(whole), int64(math.Round(frac*1e6))*int64(time.Microsecond)).UTC()
	return &models.BoxedTimestamp{Value: t.Format(time.RFC3339Nano)}, nil
}

func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
