package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_incidents_dashboard/internal/dashboard"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
	"github.com/shenikar/fire_incidents_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentSource определяет контракт источника сырых записей об инцидентах
type IncidentSource interface {
	Name() string
	FetchRaw(ctx context.Context) ([]models.RawIncident, error)
}

// FetchLogRepository определяет контракт для журнала загрузок
type FetchLogRepository interface {
	SaveFetchRecord(ctx context.Context, record *models.FetchRecord) error
	ListFetchRecords(ctx context.Context, limit int) ([]*models.FetchRecord, error)
}

// RowCache определяет контракт кеша сырых строк источника. Промах - (nil, nil).
type RowCache interface {
	GetRows(ctx context.Context, source string) ([]models.RawIncident, error)
	SetRows(ctx context.Context, source string, rows []models.RawIncident) error
	InvalidateRows(ctx context.Context, source string) error
}

// DashboardService определяет контракт бизнес-логики дашборда
type DashboardService interface {
	FetchIncidents(ctx context.Context) ([]models.RawIncident, error)
	Refresh(ctx context.Context, force bool) (*models.FetchRecord, error)
	View(ctx context.Context) dashboard.View
	Preview(ctx context.Context, filter dashboard.FilterState) dashboard.View
	SetMonths(ctx context.Context, months []int) dashboard.View
	SetCategories(ctx context.Context, categories []string) dashboard.View
	Status(ctx context.Context) models.RefreshStatus
	ListFetches(ctx context.Context, limit int) ([]*models.FetchRecord, error)
}

// FetchError - ошибка получения данных из источника. Состояние дашборда при этом не меняется.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrRefreshInProgress - обновление уже выполняется
var ErrRefreshInProgress = errors.New("refresh already in progress")

type dashboardService struct {
	source    IncidentSource
	fetchLog  FetchLogRepository
	cache     RowCache
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	timeout   time.Duration

	// mu защищает состояние дашборда, единственный владелец - сервис
	mu     sync.RWMutex
	board  *dashboard.Dashboard
	status models.RefreshStatus

	refreshing sync.Mutex
}

// NewDashboardService создает сервис. cache и publisher могут быть nil.
func NewDashboardService(
	source IncidentSource,
	fetchLog FetchLogRepository,
	cache RowCache,
	publisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	timeout time.Duration,
) DashboardService {
	return &dashboardService{
		source:    source,
		fetchLog:  fetchLog,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		timeout:   timeout,
		board:     dashboard.New(),
	}
}

// FetchIncidents возвращает строки источника как есть
func (s *dashboardService) FetchIncidents(ctx context.Context) ([]models.RawIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "FetchIncidents",
		"source":  s.source.Name(),
	})
	log.Info("Fetching raw incidents")

	rows, err := s.fetch(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch raw incidents")
		return nil, err
	}

	log.WithField("count", len(rows)).Info("Raw incidents fetched successfully")
	return rows, nil
}

// Refresh загружает данные и целиком заменяет ими записи дашборда
func (s *dashboardService) Refresh(ctx context.Context, force bool) (*models.FetchRecord, error) {
	if !s.refreshing.TryLock() {
		return nil, ErrRefreshInProgress
	}
	defer s.refreshing.Unlock()

	record := &models.FetchRecord{
		RefreshID: uuid.New(),
		Source:    s.source.Name(),
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "Refresh",
		"refresh_id": record.RefreshID,
		"source":     record.Source,
		"force":      force,
	})
	log.Info("Refreshing dashboard data")

	started := time.Now()
	rows, fromCache, err := s.loadRows(ctx, force, log)
	if err == nil {
		record.RowCount = len(rows)
		s.mu.Lock()
		err = s.board.Load(rows)
		s.mu.Unlock()
		if err != nil {
			if fromCache && s.cache != nil {
				if cacheErr := s.cache.InvalidateRows(ctx, record.Source); cacheErr != nil {
					log.WithError(cacheErr).Warn("Failed to invalidate rows cache")
				}
			}
			err = fmt.Errorf("service: could not ingest incidents: %w", err)
		}
	}
	record.DurationMs = time.Since(started).Milliseconds()

	if err != nil {
		log.WithError(err).Error("Dashboard refresh failed")
		record.Status = models.FetchStatusFailed
		record.Error = err.Error()
	} else {
		record.Status = models.FetchStatusSuccess
	}

	s.finishRefresh(ctx, record, log)
	if err != nil {
		return record, err
	}

	log.WithFields(logrus.Fields{
		"count":      record.RowCount,
		"from_cache": fromCache,
	}).Info("Dashboard refreshed successfully")
	return record, nil
}

// loadRows берет строки из кеша, при промахе или force - из источника
func (s *dashboardService) loadRows(ctx context.Context, force bool, log *logrus.Entry) ([]models.RawIncident, bool, error) {
	source := s.source.Name()
	if s.cache != nil && !force {
		rows, err := s.cache.GetRows(ctx, source)
		if err != nil {
			log.WithError(err).Warn("Failed to read rows cache, falling back to source")
		} else if rows != nil {
			log.WithField("count", len(rows)).Debug("Rows served from cache")
			return rows, true, nil
		}
	}

	rows, err := s.fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.SetRows(ctx, source, rows); err != nil {
			log.WithError(err).Warn("Failed to write rows cache")
		}
	}
	return rows, false, nil
}

func (s *dashboardService) fetch(ctx context.Context) ([]models.RawIncident, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	rows, err := s.source.FetchRaw(ctx)
	if err != nil {
		return nil, &FetchError{Source: s.source.Name(), Err: err}
	}
	return rows, nil
}

// finishRefresh фиксирует итог обновления: статус, журнал и событие вебхука
func (s *dashboardService) finishRefresh(ctx context.Context, record *models.FetchRecord, log *logrus.Entry) {
	now := time.Now().UTC()
	record.FetchedAt = now

	s.mu.Lock()
	s.status.LastAttemptAt = &now
	if record.Status == models.FetchStatusSuccess {
		s.status.LastSuccessAt = &now
		s.status.LastError = ""
	} else {
		s.status.LastError = record.Error
	}
	s.mu.Unlock()

	if s.fetchLog != nil {
		if err := s.fetchLog.SaveFetchRecord(ctx, record); err != nil {
			log.WithError(err).Warn("Failed to save fetch record")
		}
	}

	if s.publisher != nil {
		event := webhook.RefreshEvent{
			ID:        record.RefreshID,
			Source:    record.Source,
			Status:    record.Status,
			RowCount:  record.RowCount,
			Error:     record.Error,
			Timestamp: now,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish refresh event")
		}
	}
}

// View возвращает агрегаты по текущему фильтру
func (s *dashboardService) View(ctx context.Context) dashboard.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.View()
}

// Preview считает агрегаты для переданного фильтра без изменения состояния
func (s *dashboardService) Preview(ctx context.Context, filter dashboard.FilterState) dashboard.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Preview(filter)
}

// SetMonths заменяет выбранные месяцы
func (s *dashboardService) SetMonths(ctx context.Context, months []int) dashboard.View {
	s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "SetMonths",
		"months":  months,
	}).Debug("Updating month selection")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.SetMonths(months)
	return s.board.View()
}

// SetCategories заменяет выбранные категории
func (s *dashboardService) SetCategories(ctx context.Context, categories []string) dashboard.View {
	s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "SetCategories",
		"categories": categories,
	}).Debug("Updating category selection")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.SetCategories(categories)
	return s.board.View()
}

func (s *dashboardService) Status(ctx context.Context) models.RefreshStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// ListFetches возвращает журнал загрузок, новые записи первыми
func (s *dashboardService) ListFetches(ctx context.Context, limit int) ([]*models.FetchRecord, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ListFetches",
		"limit":   limit,
	})
	if s.fetchLog == nil {
		return []*models.FetchRecord{}, nil
	}

	records, err := s.fetchLog.ListFetchRecords(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list fetch records from repository")
		return nil, fmt.Errorf("service: could not list fetch records: %w", err)
	}

	log.WithField("count", len(records)).Info("Fetch records listed successfully")
	return records, nil
}
