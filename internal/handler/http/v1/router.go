package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Прокси к источнику данных
	api.GET("/fire-incidents", h.listFireIncidents)

	board := api.Group("/dashboard")
	{
		board.GET("", h.getDashboard)
		board.GET("/preview", h.previewDashboard)
		board.PUT("/filters/months", h.setMonths)
		board.PUT("/filters/categories", h.setCategories)
	}

	// Обновление данных и журнал загрузок только по API-ключу
	admin := board.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.POST("/refresh", h.refresh)
		admin.GET("/fetches", h.listFetches)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
