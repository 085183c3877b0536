package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fire_incidents_dashboard/internal/config"
	"github.com/shenikar/fire_incidents_dashboard/internal/dashboard"
	"github.com/shenikar/fire_incidents_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Proxy fire incidents from the data source
// @Description Run the fixed read-only query against the configured source and return the rows as they are.
// @Tags Incidents
// @Produce json
// @Success 200 {array} models.RawIncident
// @Failure 500 {object} map[string]string "Error fetching data from warehouse"
// @Router /fire-incidents [get]
func (h *Handler) listFireIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listFireIncidents")

	rows, err := h.dashboardService.FetchIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch incidents from source")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching data from warehouse"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// @Summary Get dashboard
// @Description Get filter options, current selection and the three aggregates over the filtered records.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	view := h.dashboardService.View(ctx)
	c.JSON(http.StatusOK, ViewToDashboardResponse(view, h.dashboardService.Status(ctx)))
}

// @Summary Preview dashboard for an ad-hoc filter
// @Description Aggregate records for the given months and categories without changing the saved selection.
// @Tags Dashboard
// @Produce json
// @Param month query []int false "Month number 1..12, repeatable" collectionFormat(multi)
// @Param category query []string false "Incident category, repeatable" collectionFormat(multi)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid month or category"
// @Router /dashboard/preview [get]
func (h *Handler) previewDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "previewDashboard")

	months := make([]int, 0)
	for _, raw := range c.QueryArray("month") {
		m, err := strconv.Atoi(raw)
		if err != nil {
			log.WithError(err).Warn("Invalid month in query")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		months = append(months, m)
	}
	monthsInput := SetMonthsRequest{Months: months}
	categoriesInput := SetCategoriesRequest{Categories: c.QueryArray("category")}

	if err := h.validate.Struct(monthsInput); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(categoriesInput); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := dashboard.FilterState{}.
		WithMonths(monthsInput.Months).
		WithCategories(categoriesInput.Categories)

	ctx := c.Request.Context()
	view := h.dashboardService.Preview(ctx, filter)
	c.JSON(http.StatusOK, ViewToDashboardResponse(view, h.dashboardService.Status(ctx)))
}

// @Summary Replace selected months
// @Description Replace the month selection. Duplicates are dropped, an empty list removes the month restriction.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param filter body SetMonthsRequest true "Selected months"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /dashboard/filters/months [put]
func (h *Handler) setMonths(c *gin.Context) {
	var input SetMonthsRequest
	log := h.logger.WithField("method", "setMonths")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	view := h.dashboardService.SetMonths(ctx, input.Months)
	c.JSON(http.StatusOK, ViewToDashboardResponse(view, h.dashboardService.Status(ctx)))
}

// @Summary Replace selected categories
// @Description Replace the category selection. Duplicates are dropped, an empty list removes the category restriction.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param filter body SetCategoriesRequest true "Selected categories"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /dashboard/filters/categories [put]
func (h *Handler) setCategories(c *gin.Context) {
	var input SetCategoriesRequest
	log := h.logger.WithField("method", "setCategories")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	view := h.dashboardService.SetCategories(ctx, input.Categories)
	c.JSON(http.StatusOK, ViewToDashboardResponse(view, h.dashboardService.Status(ctx)))
}

// @Summary Refresh dashboard data
// @Description Re-fetch incidents and replace the dashboard records. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param force query bool false "Bypass the rows cache"
// @Success 200 {object} FetchRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Refresh already in progress"
// @Failure 422 {object} map[string]string "Source returned undecodable records"
// @Failure 502 {object} map[string]string "Error fetching data from warehouse"
// @Router /dashboard/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	log := h.logger.WithField("method", "refresh")
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))

	record, err := h.dashboardService.Refresh(c.Request.Context(), force)
	if err != nil {
		var fetchErr *service.FetchError
		var decodeErr *dashboard.DecodeError
		switch {
		case errors.Is(err, service.ErrRefreshInProgress):
			log.Warn("Refresh rejected, another one is running")
			c.JSON(http.StatusConflict, gin.H{"error": "refresh already in progress"})
		case errors.As(err, &fetchErr):
			log.WithError(err).Error("Failed to fetch incidents from source")
			c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching data from warehouse"})
		case errors.As(err, &decodeErr):
			log.WithError(err).Error("Failed to ingest incidents")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": decodeErr.Error()})
		default:
			log.WithError(err).Error("Failed to refresh dashboard")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToFetchRecordResponse(record))
}

// @Summary List fetch history
// @Description Get the most recent data loads, newest first. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Number of records" default(20)
// @Success 200 {array} FetchRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/fetches [get]
func (h *Handler) listFetches(c *gin.Context) {
	log := h.logger.WithField("method", "listFetches")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.cfg.FetchHistoryLimit)))

	records, err := h.dashboardService.ListFetches(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list fetch records from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToFetchRecordResponses(records))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
