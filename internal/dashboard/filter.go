package dashboard

import (
	"slices"

	"github.com/shenikar/fire_incidents_dashboard/internal/models"
)

// FilterState - выбранные пользователем месяцы и категории.
// Пустой набор означает отсутствие ограничения по этому измерению.
type FilterState struct {
	Months     []int    `json:"months"`
	Categories []string `json:"categories"`
}

// WithMonths возвращает копию состояния с новым набором месяцев (без дублей)
func (f FilterState) WithMonths(months []int) FilterState {
	f.Months = dedup(months)
	return f
}

// WithCategories возвращает копию состояния с новым набором категорий (без дублей)
func (f FilterState) WithCategories(categories []string) FilterState {
	f.Categories = dedup(categories)
	return f
}

// InCatalogOrder раскладывает выбранные значения в порядке каталога.
// Значения, которых нет в каталоге, не отображаются, но продолжают фильтровать.
func (f FilterState) InCatalogOrder(c Catalog) FilterState {
	out := FilterState{Months: []int{}, Categories: []string{}}
	for _, m := range c.Months {
		if slices.Contains(f.Months, m) {
			out.Months = append(out.Months, m)
		}
	}
	for _, cat := range c.Categories {
		if slices.Contains(f.Categories, cat) {
			out.Categories = append(out.Categories, cat)
		}
	}
	return out
}

// EffectiveFilter - фильтр после применения правила "пусто = все"
type EffectiveFilter struct {
	Months        []int    `json:"months"`
	Categories    []string `json:"categories"`
	AllMonths     bool     `json:"all_months"`
	AllCategories bool     `json:"all_categories"`
}

// Effective подставляет весь каталог вместо пустого набора
func Effective(f FilterState, c Catalog) EffectiveFilter {
	eff := EffectiveFilter{
		Months:     f.Months,
		Categories: f.Categories,
	}
	if len(f.Months) == 0 {
		eff.Months = c.Months
		eff.AllMonths = true
	}
	if len(f.Categories) == 0 {
		eff.Categories = c.Categories
		eff.AllCategories = true
	}
	return eff
}

// Match сообщает, проходит ли запись через фильтр.
// Измерение без явного выбора пропускает любую запись, в том числе с пустой категорией.
func (e EffectiveFilter) Match(inc models.Incident) bool {
	if !e.AllMonths && !slices.Contains(e.Months, inc.Month) {
		return false
	}
	if !e.AllCategories && !slices.Contains(e.Categories, inc.Category) {
		return false
	}
	return true
}

func dedup[T comparable](values []T) []T {
	out := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
