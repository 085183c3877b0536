package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/fire_incidents_dashboard/internal/config"
	"github.com/shenikar/fire_incidents_dashboard/internal/dashboard"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
	"github.com/shenikar/fire_incidents_dashboard/internal/service"
	"github.com/shenikar/fire_incidents_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:           []string{"test-api-key"},
		FetchHistoryLimit: 20,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// sampleView - представление для записей:
// Fire/январь, False Alarm/январь, Fire/март
func sampleView() dashboard.View {
	var dist [12]int
	dist[0], dist[2] = 2, 1
	return dashboard.View{
		Catalog:   dashboard.Catalog{Months: []int{1, 3}, Categories: []string{"Fire", "False Alarm"}},
		Selection: dashboard.FilterState{Months: []int{1, 3}, Categories: []string{"Fire", "False Alarm"}},
		Effective: dashboard.EffectiveFilter{Months: []int{1, 3}, Categories: []string{"Fire", "False Alarm"}},
		Aggregates: dashboard.Aggregates{
			Categories:   []dashboard.CategoryCount{{Label: "Fire", Count: 2}, {Label: "False Alarm", Count: 1}},
			Months:       []dashboard.MonthCount{{Month: 1, Count: 2}, {Month: 3, Count: 1}},
			Distribution: dist,
			Total:        3,
		},
		RecordCount: 3,
		Seeded:      true,
	}
}

func TestListFireIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	rows := []models.RawIncident{
		{IncidentNo: "1", DateTimeOfEvent: &models.BoxedTimestamp{Value: "2023-01-05T10:00:00"}, FinalIncidentCategory: "Fire"},
		{IncidentNo: "2"},
	}

	mockService.EXPECT().FetchIncidents(gomock.Any()).Return(rows, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/fire-incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "1", resp[0]["Incident_No"])
	assert.Equal(t, map[string]any{"value": "2023-01-05T10:00:00"}, resp[0]["Date_Time_Of_Event"])
	assert.Nil(t, resp[1]["Date_Time_Of_Event"])
}

func TestListFireIncidents_SourceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().FetchIncidents(gomock.Any()).
		Return(nil, &service.FetchError{Source: "bigquery", Err: errors.New("timeout")}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/fire-incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"error fetching data from warehouse"}`, w.Body.String())
}

func TestGetDashboard_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	refreshedAt := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

	mockService.EXPECT().View(gomock.Any()).Return(sampleView()).Times(1)
	mockService.EXPECT().Status(gomock.Any()).
		Return(models.RefreshStatus{LastAttemptAt: &refreshedAt, LastSuccessAt: &refreshedAt}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []MonthOption{{Value: 1, Label: "January"}, {Value: 3, Label: "March"}}, resp.Options.Months)
	assert.Equal(t, []string{"Fire", "False Alarm"}, resp.Selection.Categories)
	assert.Equal(t, []ChartPoint{{Label: "Fire", Value: 2}, {Label: "False Alarm", Value: 1}}, resp.Categories)
	assert.Equal(t, []ChartPoint{{Label: "January", Value: 2}, {Label: "March", Value: 1}}, resp.Months)
	require.Len(t, resp.Distribution, 12)
	assert.Equal(t, ChartPoint{Label: "January", Value: 2}, resp.Distribution[0])
	assert.Equal(t, ChartPoint{Label: "February", Value: 0}, resp.Distribution[1])
	assert.Equal(t, ChartPoint{Label: "December", Value: 0}, resp.Distribution[11])
	assert.Equal(t, 3, resp.Total)
	assert.True(t, resp.Seeded)
	require.NotNil(t, resp.LastSuccessAt)
	assert.True(t, refreshedAt.Equal(*resp.LastSuccessAt))
}

func TestPreviewDashboard_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Preview(gomock.Any(), dashboard.FilterState{Months: []int{3, 1}, Categories: []string{"Fire"}}).
		Return(sampleView()).Times(1)
	mockService.EXPECT().Status(gomock.Any()).Return(models.RefreshStatus{}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/preview?month=3&month=1&month=3&category=Fire", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPreviewDashboard_NoParams(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Preview(gomock.Any(), dashboard.FilterState{Months: []int{}, Categories: []string{}}).
		Return(sampleView()).Times(1)
	mockService.EXPECT().Status(gomock.Any()).Return(models.RefreshStatus{}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/preview", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPreviewDashboard_InvalidMonth(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Preview(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/dashboard/preview?month=march", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid month")

	w = makeRequest(router, "GET", "/api/v1/dashboard/preview?month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'max' tag")
}

func TestSetMonths_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetMonths(gomock.Any(), []int{1}).Return(sampleView()).Times(1)
	mockService.EXPECT().Status(gomock.Any()).Return(models.RefreshStatus{}).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/dashboard/filters/months", bytes.NewBufferString(`{"months":[1]}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetMonths_EmptyListClearsRestriction(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetMonths(gomock.Any(), []int{}).Return(sampleView()).Times(1)
	mockService.EXPECT().Status(gomock.Any()).Return(models.RefreshStatus{}).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/dashboard/filters/months", bytes.NewBufferString(`{"months":[]}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetMonths_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetMonths(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "PUT", "/api/v1/dashboard/filters/months", bytes.NewBufferString(`{"months":[0]}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'min' tag")
}

func TestSetMonths_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetMonths(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/dashboard/filters/months", bytes.NewBufferString(`{"months": "1"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSetCategories_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetCategories(gomock.Any(), []string{"Fire", "Medical"}).Return(sampleView()).Times(1)
	mockService.EXPECT().Status(gomock.Any()).Return(models.RefreshStatus{}).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/dashboard/filters/categories", bytes.NewBufferString(`{"categories":["Fire","Medical"]}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetCategories_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetCategories(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/dashboard/filters/categories", bytes.NewBufferString(`{"categories":[""]}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'required' tag")
}

func TestRefresh_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	record := &models.FetchRecord{
		ID:        7,
		RefreshID: uuid.New(),
		Source:    "bigquery",
		Status:    models.FetchStatusSuccess,
		RowCount:  3,
		FetchedAt: time.Now().UTC(),
	}

	mockService.EXPECT().Refresh(gomock.Any(), true).Return(record, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/refresh?force=true", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FetchRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, record.RefreshID, resp.RefreshID)
	assert.Equal(t, 3, resp.RowCount)
}

func TestRefresh_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"in progress", service.ErrRefreshInProgress, http.StatusConflict, "refresh already in progress"},
		{"fetch", &service.FetchError{Source: "bigquery", Err: errors.New("timeout")}, http.StatusBadGateway, "error fetching data from warehouse"},
		{
			"decode",
			fmt.Errorf("service: could not ingest incidents: %w", &dashboard.DecodeError{IncidentNo: "9", Value: "x", Err: errors.New("bad")}),
			http.StatusUnprocessableEntity,
			`incident \"9\"`,
		},
		{"other", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)

			mockService.EXPECT().Refresh(gomock.Any(), false).Return(nil, tt.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/dashboard/refresh", nil, apiKeyHeader)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRefresh_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Refresh(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/dashboard/refresh", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "POST", "/api/v1/dashboard/refresh", nil, map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestListFetches_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	records := []*models.FetchRecord{
		{ID: 2, RefreshID: uuid.New(), Status: models.FetchStatusFailed, Error: "fetch from bigquery: timeout"},
		{ID: 1, RefreshID: uuid.New(), Status: models.FetchStatusSuccess, RowCount: 3},
	}

	mockService.EXPECT().ListFetches(gomock.Any(), 5).Return(records, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/fetches?limit=5", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []FetchRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
	assert.Equal(t, "fetch from bigquery: timeout", resp[0].Error)
}

func TestListFetches_DefaultLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListFetches(gomock.Any(), 20).Return([]*models.FetchRecord{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/fetches", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListFetches_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListFetches(gomock.Any(), 20).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/fetches", nil, apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
