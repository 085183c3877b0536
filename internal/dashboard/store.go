package dashboard

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
)

// Форматы, в которых хранилище отдает дату события. Значения без зоны считаются UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var errUnsupportedTimestamp = errors.New("unsupported timestamp format")

// RecordStore хранит последний успешно загруженный набор записей
type RecordStore struct {
	records []models.Incident
}

// Ingest нормализует сырые записи и заменяет ими текущее содержимое.
// При ошибке декодирования содержимое не меняется.
func (s *RecordStore) Ingest(raw []models.RawIncident) ([]models.Incident, error) {
	records, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	s.records = records
	return records, nil
}

// Records возвращает текущие записи в порядке загрузки
func (s *RecordStore) Records() []models.Incident {
	return s.records
}

func (s *RecordStore) Len() int {
	return len(s.records)
}

// Normalize декодирует дату каждой записи и вычисляет номер месяца (1-12).
// Первая же ошибка возвращается как *DecodeError.
func Normalize(raw []models.RawIncident) ([]models.Incident, error) {
	records := make([]models.Incident, 0, len(raw))
	for i, r := range raw {
		occurredAt, err := decodeTimestamp(r.DateTimeOfEvent)
		if err != nil {
			de := &DecodeError{Index: i, IncidentNo: r.IncidentNo, Err: err}
			if r.DateTimeOfEvent != nil {
				de.Value = r.DateTimeOfEvent.Value
			}
			return nil, de
		}
		records = append(records, models.Incident{
			ID:         r.IncidentNo,
			OccurredAt: occurredAt,
			Month:      int(occurredAt.Month()),
			Type:       r.FinalIncidentType,
			Category:   r.FinalIncidentCategory,
			StreetName: r.StreetName,
		})
	}
	return records, nil
}

func decodeTimestamp(box *models.BoxedTimestamp) (time.Time, error) {
	if box == nil {
		return time.Time{}, ErrMissingTimestamp
	}
	value := strings.TrimSpace(box.Value)
	if value == "" {
		return time.Time{}, ErrMissingTimestamp
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	// Выгрузки таблицы встречаются и в виде "03/15/2023 10:00:00 PM"
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, errors.Join(errUnsupportedTimestamp, err)
	}
	return t.UTC(), nil
}
