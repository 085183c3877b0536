package v1

import (
	"github.com/shenikar/fire_incidents_dashboard/internal/dashboard"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
)

// ViewToDashboardResponse преобразует представление дашборда в DTO для ответа
func ViewToDashboardResponse(view dashboard.View, status models.RefreshStatus) *DashboardResponse {
	resp := &DashboardResponse{
		Options: FilterOptionsResponse{
			Months:     make([]MonthOption, 0, len(view.Catalog.Months)),
			Categories: append([]string{}, view.Catalog.Categories...),
		},
		Selection: SelectionResponse{
			Months:        append([]int{}, view.Selection.Months...),
			Categories:    append([]string{}, view.Selection.Categories...),
			AllMonths:     view.Effective.AllMonths,
			AllCategories: view.Effective.AllCategories,
		},
		Categories:    make([]ChartPoint, 0, len(view.Aggregates.Categories)),
		Months:        make([]ChartPoint, 0, len(view.Aggregates.Months)),
		Distribution:  make([]ChartPoint, 0, len(view.Aggregates.Distribution)),
		Total:         view.Aggregates.Total,
		RecordCount:   view.RecordCount,
		Seeded:        view.Seeded,
		LastAttemptAt: status.LastAttemptAt,
		LastSuccessAt: status.LastSuccessAt,
		LastError:     status.LastError,
	}

	for _, m := range view.Catalog.Months {
		resp.Options.Months = append(resp.Options.Months, MonthOption{Value: m, Label: dashboard.MonthName(m)})
	}
	for _, c := range view.Aggregates.Categories {
		resp.Categories = append(resp.Categories, ChartPoint{Label: c.Label, Value: c.Count})
	}
	for _, m := range view.Aggregates.Months {
		resp.Months = append(resp.Months, ChartPoint{Label: dashboard.MonthName(m.Month), Value: m.Count})
	}
	for i, count := range view.Aggregates.Distribution {
		resp.Distribution = append(resp.Distribution, ChartPoint{Label: dashboard.MonthName(i + 1), Value: count})
	}
	return resp
}

// ModelToFetchRecordResponse преобразует запись журнала в DTO
func ModelToFetchRecordResponse(model *models.FetchRecord) *FetchRecordResponse {
	return &FetchRecordResponse{
		ID:         model.ID,
		RefreshID:  model.RefreshID,
		Source:     model.Source,
		Status:     model.Status,
		RowCount:   model.RowCount,
		Error:      model.Error,
		DurationMs: model.DurationMs,
		FetchedAt:  model.FetchedAt,
	}
}

// ModelsToFetchRecordResponses преобразует слайс записей журнала в слайс DTO
func ModelsToFetchRecordResponses(records []*models.FetchRecord) []*FetchRecordResponse {
	responses := make([]*FetchRecordResponse, len(records))
	for i, record := range records {
		responses[i] = ModelToFetchRecordResponse(record)
	}
	return responses
}
