package dashboard

import "github.com/shenikar/fire_incidents_dashboard/internal/models"

// SeedState - состояние одноразовой инициализации фильтров
type SeedState int

const (
	Unseeded SeedState = iota
	Seeded
)

func (s SeedState) String() string {
	if s == Seeded {
		return "seeded"
	}
	return "unseeded"
}

// Seeder выставляет фильтр "все месяцы, все категории" при первом появлении данных.
// Переход Unseeded -> Seeded происходит один раз и не откатывается.
type Seeder struct {
	state SeedState
}

func (s *Seeder) State() SeedState {
	return s.state
}

// MaybeSeed возвращает засеянный фильтр, если данные непустые и засева еще не было,
// иначе возвращает current без изменений
func (s *Seeder) MaybeSeed(records []models.Incident, catalog Catalog, current FilterState) FilterState {
	if s.state == Seeded || len(records) == 0 {
		return current
	}
	s.state = Seeded
	return FilterState{
		Months:     append([]int{}, catalog.Months...),
		Categories: append([]string{}, catalog.Categories...),
	}
}
