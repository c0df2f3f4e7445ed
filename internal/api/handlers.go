package api

import (
	"net/http"
	"os"

	"vitrine/server/internal/catalog"
	"vitrine/server/internal/models"
	"vitrine/server/internal/notify"
	"vitrine/server/internal/queue"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	catalog  *catalog.Service
	imports  *queue.PropertyQueue
	notifier *notify.Service
	logger   *logrus.Logger
}

// ImportRequest carries a batch of properties to upsert into the store.
type ImportRequest struct {
	Properties []models.PropertyPayload `json:"properties" binding:"required"`
}

func NewHandler(svc *catalog.Service, imports *queue.PropertyQueue, notifier *notify.Service, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		catalog:  svc,
		imports:  imports,
		notifier: notifier,
		logger:   logger,
	}
}

func (h *Handler) GetProperties(c *gin.Context) {
	filter := ParseFilter(c.Request.URL.Query())

	properties, err := h.catalog.ListProperties(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id := c.Param("id")

	property, err := h.catalog.GetProperty(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) GetCities(c *gin.Context) {
	cities, err := h.catalog.ListCities()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list cities")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (h *Handler) CreateLead(c *gin.Context) {
	var input models.LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Failed to parse lead request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	lead, err := h.catalog.SubmitLead(input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to submit lead")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Broker notification is best-effort and never affects the response.
	if h.notifier != nil && h.notifier.Enabled() {
		go func(lead models.Lead) {
			if err := h.notifier.NotifyNewLead(lead); err != nil {
				h.logger.WithError(err).Error("Failed to send lead notification")
			}
		}(lead)
	}

	c.JSON(http.StatusCreated, lead)
}

func (h *Handler) GetLeads(c *gin.Context) {
	leads, err := h.catalog.ListLeads()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list leads")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leads)
}

func (h *Handler) ImportProperties(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse import request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	batch := make([]*models.PropertyRow, 0, len(req.Properties))
	for _, payload := range req.Properties {
		batch = append(batch, payload.Row())
	}

	if err := h.imports.Push(batch); err != nil {
		h.logger.WithError(err).Error("Failed to enqueue import batch")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Import queue unavailable"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status": "accepted",
		"count":  len(batch),
	})
}
