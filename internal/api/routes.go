package api

import (
	"vitrine/server/internal/catalog"
	"vitrine/server/internal/notify"
	"vitrine/server/internal/queue"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(router *gin.Engine, svc *catalog.Service, imports *queue.PropertyQueue, notifier *notify.Service, logger *logrus.Logger) {
	handler := NewHandler(svc, imports, notifier, logger)

	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetProperties)
		api.GET("/properties/:id", handler.GetProperty)
		api.GET("/cities", handler.GetCities)
		api.POST("/leads", handler.CreateLead)
		api.GET("/leads", handler.GetLeads)
		api.POST("/import", handler.ImportProperties)
	}
}
