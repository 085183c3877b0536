package dashboard

import (
	"slices"
	"time"

	"github.com/shenikar/fire_incidents_dashboard/internal/models"
)

// UnknownCategory - подпись для записей без категории
const UnknownCategory = "Unknown"

type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// Aggregates - три представления по отфильтрованным записям
type Aggregates struct {
	// Categories в порядке первого появления категории
	Categories []CategoryCount `json:"categories"`
	// Months только для встретившихся месяцев, по возрастанию
	Months []MonthCount `json:"months"`
	// Distribution - всегда 12 значений, январь..декабрь
	Distribution [12]int `json:"distribution"`
	Total        int     `json:"total"`
}

// Aggregate строит все представления. Чистая функция: одинаковые входы дают одинаковый результат.
func Aggregate(records []models.Incident, filter FilterState, catalog Catalog) Aggregates {
	filtered := Filter(records, Effective(filter, catalog))
	return Aggregates{
		Categories:   CategoryHistogram(filtered),
		Months:       MonthHistogram(filtered),
		Distribution: FixedMonthDistribution(filtered),
		Total:        len(filtered),
	}
}

// Filter оставляет записи, прошедшие эффективный фильтр, сохраняя порядок
func Filter(records []models.Incident, eff EffectiveFilter) []models.Incident {
	out := make([]models.Incident, 0, len(records))
	for _, r := range records {
		if eff.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func CategoryHistogram(records []models.Incident) []CategoryCount {
	index := make(map[string]int)
	out := make([]CategoryCount, 0)
	for _, r := range records {
		label := r.Category
		if label == "" {
			label = UnknownCategory
		}
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, CategoryCount{Label: label})
		}
		out[i].Count++
	}
	return out
}

func MonthHistogram(records []models.Incident) []MonthCount {
	counts := make(map[int]int, 12)
	for _, r := range records {
		counts[r.Month]++
	}
	months := make([]int, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	slices.Sort(months)

	out := make([]MonthCount, 0, len(months))
	for _, m := range months {
		out = append(out, MonthCount{Month: m, Count: counts[m]})
	}
	return out
}

// FixedMonthDistribution считает записи по всем 12 месяцам.
// Месяц, отсеянный фильтром по месяцам, дает 0, а не свое полное значение.
func FixedMonthDistribution(records []models.Incident) [12]int {
	var out [12]int
	for _, r := range records {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		out[r.Month-1]++
	}
	return out
}

// MonthName возвращает английское название месяца (1 -> January)
func MonthName(month int) string {
	return time.Month(month).String()
}
