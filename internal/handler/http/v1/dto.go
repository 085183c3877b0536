package v1

import (
	"time"

	"github.com/google/uuid"
)

// SetMonthsRequest DTO для замены выбранных месяцев
// @Description DTO для замены выбранных месяцев. Пустой список снимает ограничение.
type SetMonthsRequest struct {
	Months []int `json:"months" validate:"dive,min=1,max=12"`
}

// SetCategoriesRequest DTO для замены выбранных категорий
// @Description DTO для замены выбранных категорий. Пустой список снимает ограничение.
type SetCategoriesRequest struct {
	Categories []string `json:"categories" validate:"dive,required,max=255"`
}

// ChartPoint - одна точка графика
// @Description Подпись и значение точки графика
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// MonthOption - месяц, доступный для выбора
type MonthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FilterOptionsResponse - значения, из которых можно выбирать
type FilterOptionsResponse struct {
	Months     []MonthOption `json:"months"`
	Categories []string      `json:"categories"`
}

// SelectionResponse - текущий выбор в порядке каталога
type SelectionResponse struct {
	Months        []int    `json:"months"`
	Categories    []string `json:"categories"`
	AllMonths     bool     `json:"all_months"`
	AllCategories bool     `json:"all_categories"`
}

// DashboardResponse DTO для ответа с состоянием дашборда
// @Description Опции фильтров, выбор и три агрегата по отфильтрованным записям
type DashboardResponse struct {
	Options       FilterOptionsResponse `json:"options"`
	Selection     SelectionResponse     `json:"selection"`
	Categories    []ChartPoint          `json:"categories"`
	Months        []ChartPoint          `json:"months"`
	Distribution  []ChartPoint          `json:"distribution"`
	Total         int                   `json:"total"`
	RecordCount   int                   `json:"record_count"`
	Seeded        bool                  `json:"seeded"`
	LastAttemptAt *time.Time            `json:"last_attempt_at,omitempty"`
	LastSuccessAt *time.Time            `json:"last_success_at,omitempty"`
	LastError     string                `json:"last_error,omitempty"`
}

// FetchRecordResponse DTO для записи журнала загрузок
// @Description Итог одной загрузки данных из источника
type FetchRecordResponse struct {
	ID         int64     `json:"id"`
	RefreshID  uuid.UUID `json:"refresh_id"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	RowCount   int       `json:"row_count"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	FetchedAt  time.Time `json:"fetched_at"`
}
