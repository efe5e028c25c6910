package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type createExperimentRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) CreateExperiment(c *gin.Context) {
	var req createExperimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.experimentSvc.CreateExperiment(c.Request.Context(), req.Name)
	if err != nil {
		log.WithError(err).Error("create experiment failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"experimentId": id})
}

func (h *Handler) ListExperiments(c *gin.Context) {
	if filter := c.Query("filter"); filter != "" {
		result, err := h.experimentSvc.SearchExperiments(c.Request.Context(), filter)
		if err != nil {
			log.WithError(err).Error("search experiments failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	refresh := c.Query("refresh") == "true"
	result, err := h.experimentSvc.ListExperiments(c.Request.Context(), refresh)
	if err != nil {
		log.WithError(err).Error("list experiments failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetExperiment(c *gin.Context) {
	result, err := h.experimentSvc.GetExperiment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateRun(c *gin.Context) {
	result, err := h.experimentSvc.CreateRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.WithError(err).Error("create run failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) SearchRuns(c *gin.Context) {
	result, err := h.experimentSvc.SearchRuns(c.Request.Context(), c.Param("id"), c.Query("filter"))
	if err != nil {
		log.WithError(err).Error("search runs failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetRun(c *gin.Context) {
	result, err := h.experimentSvc.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetMetricHistory(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	result, err := h.experimentSvc.MetricHistory(c.Request.Context(), c.Param("id"), key)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) SearchRegisteredModels(c *gin.Context) {
	refresh := c.Query("refresh") == "true"
	result, err := h.experimentSvc.SearchRegisteredModels(c.Request.Context(), c.Query("filter"), refresh)
	if err != nil {
		log.WithError(err).Error("search registered models failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
