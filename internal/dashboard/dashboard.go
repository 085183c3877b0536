package dashboard

import "github.com/shenikar/fire_incidents_dashboard/internal/models"

// View - все, что нужно слою представления: опции фильтров, выбор и агрегаты
type View struct {
	Catalog     Catalog         `json:"catalog"`
	Selection   FilterState     `json:"selection"`
	Effective   EffectiveFilter `json:"effective"`
	Aggregates  Aggregates      `json:"aggregates"`
	RecordCount int             `json:"record_count"`
	Seeded      bool            `json:"seeded"`
}

// Dashboard владеет состоянием конвейера: записи, каталог, фильтр и флаг засева.
// Не потокобезопасен, синхронизация - на вызывающей стороне.
type Dashboard struct {
	store   RecordStore
	catalog Catalog
	filter  FilterState
	seeder  Seeder
}

func New() *Dashboard {
	return &Dashboard{
		catalog: NewCatalog(nil),
		filter:  FilterState{Months: []int{}, Categories: []string{}},
	}
}

// Load заменяет записи, пересчитывает каталог и при первом появлении данных засевает фильтр.
// При ошибке декодирования состояние не меняется.
func (d *Dashboard) Load(raw []models.RawIncident) error {
	records, err := d.store.Ingest(raw)
	if err != nil {
		return err
	}
	d.catalog = NewCatalog(records)
	d.filter = d.seeder.MaybeSeed(records, d.catalog, d.filter)
	return nil
}

func (d *Dashboard) SetMonths(months []int) {
	d.filter = d.filter.WithMonths(months)
}

func (d *Dashboard) SetCategories(categories []string) {
	d.filter = d.filter.WithCategories(categories)
}

func (d *Dashboard) Filter() FilterState {
	return d.filter
}

func (d *Dashboard) Catalog() Catalog {
	return d.catalog
}

func (d *Dashboard) SeedState() SeedState {
	return d.seeder.State()
}

func (d *Dashboard) Records() []models.Incident {
	return d.store.Records()
}

// View пересчитывает агрегаты по текущему фильтру
func (d *Dashboard) View() View {
	return d.Preview(d.filter)
}

// Preview считает агрегаты для произвольного фильтра, не меняя состояние
func (d *Dashboard) Preview(filter FilterState) View {
	return View{
		Catalog:     d.catalog,
		Selection:   filter.InCatalogOrder(d.catalog),
		Effective:   Effective(filter, d.catalog),
		Aggregates:  Aggregate(d.store.Records(), filter, d.catalog),
		RecordCount: d.store.Len(),
		Seeded:      d.seeder.State() == Seeded,
	}
}
