package dashboard

import (
	"slices"

	"github.com/shenikar/fire_incidents_dashboard/internal/models"
)

// Catalog - все значения фильтров, которые встречаются в данных
type Catalog struct {
	Months     []int    `json:"months"`
	Categories []string `json:"categories"`
}

func NewCatalog(records []models.Incident) Catalog {
	return Catalog{
		Months:     DistinctMonths(records),
		Categories: DistinctCategories(records),
	}
}

// DistinctMonths возвращает уникальные месяцы по возрастанию
func DistinctMonths(records []models.Incident) []int {
	seen := make(map[int]struct{}, 12)
	months := make([]int, 0, 12)
	for _, r := range records {
		if _, ok := seen[r.Month]; ok {
			continue
		}
		seen[r.Month] = struct{}{}
		months = append(months, r.Month)
	}
	slices.Sort(months)
	return months
}

// DistinctCategories возвращает уникальные непустые категории в порядке первого появления
func DistinctCategories(records []models.Incident) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, r := range records {
		if r.Category == "" {
			continue
		}
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		categories = append(categories, r.Category)
	}
	return categories
}
