package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/adapters/primary/http/dto"
	"mlops-hub-backend/internal/core/domain"
)

func (h *Handler) ListEntrypoints(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		entrypoints []*domain.Entrypoint
		err         error
	)
	switch {
	case c.Query("name") != "":
		var ep *domain.Entrypoint
		ep, err = h.entrypointSvc.GetByName(ctx, c.Query("name"))
		if err != nil {
			mapDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, ep)
		return
	case c.Query("status") != "":
		entrypoints, err = h.entrypointSvc.ListByStatus(ctx, c.Query("status"))
	case c.Query("type") != "":
		entrypoints, err = h.entrypointSvc.ListByType(ctx, c.Query("type"))
	case c.Query("modelId") != "":
		var modelID int64
		modelID, err = strconv.ParseInt(c.Query("modelId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid modelId"})
			return
		}
		entrypoints, err = h.entrypointSvc.ListByModel(ctx, modelID)
	case c.Query("serviceId") != "":
		var serviceID int64
		serviceID, err = strconv.ParseInt(c.Query("serviceId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid serviceId"})
			return
		}
		entrypoints, err = h.entrypointSvc.ListByService(ctx, serviceID)
	case c.Query("ownerId") != "":
		var ownerID int64
		ownerID, err = strconv.ParseInt(c.Query("ownerId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ownerId"})
			return
		}
		entrypoints, err = h.entrypointSvc.ListByOwner(ctx, ownerID)
	case c.Query("q") != "":
		entrypoints, err = h.entrypointSvc.Search(ctx, c.Query("q"))
	default:
		entrypoints, err = h.entrypointSvc.List(ctx)
	}
	if err != nil {
		log.WithError(err).Error("list entrypoints failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entrypoints)
}

func (h *Handler) GetEntrypoint(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	ep, err := h.entrypointSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *Handler) CreateEntrypoint(c *gin.Context) {
	var req dto.CreateEntrypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ep, err := h.entrypointSvc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		log.WithError(err).Error("create entrypoint failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ep)
}

func (h *Handler) UpdateEntrypoint(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEntrypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ep, err := h.entrypointSvc.Update(c.Request.Context(), id, req.Updates())
	if err != nil {
		log.WithError(err).Error("update entrypoint failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *Handler) UpdateEntrypointStatus(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ep, err := h.entrypointSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *Handler) DeleteEntrypoint(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	if err := h.entrypointSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete entrypoint failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Infer forwards a JSON payload through the gateway and relays the
// classified status code and upstream body.
func (h *Handler) Infer(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gatewaySvc.Infer(c.Request.Context(), id, payload)
	if err != nil {
		log.WithError(err).WithField("entrypoint_id", id).Error("infer failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(result.StatusCode, result.Body)
}

// GetHistory lists call records newest first. A storage failure reports 500
// with an empty list so the frontend table renders.
func (h *Handler) GetHistory(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	records, err := h.historySvc.GetHistory(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("list entrypoint history failed")
		c.JSON(http.StatusInternalServerError, []*domain.EntrypointHistory{})
		return
	}
	if records == nil {
		records = []*domain.EntrypointHistory{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) GetHistoryCount(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	count, err := h.historySvc.Count(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) GetEntrypointMetrics(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	hours, err := strconv.Atoi(c.DefaultQuery("hours", "24"))
	if err != nil || hours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours"})
		return
	}

	metrics, err := h.historySvc.GetMetrics(c.Request.Context(), id, hours)
	if err != nil {
		log.WithError(err).Error("entrypoint metrics failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *Handler) GetDailyMetrics(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}

	metrics, err := h.historySvc.GetDailyMetrics(c.Request.Context(), id, days)
	if err != nil {
		log.WithError(err).Error("entrypoint daily metrics failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
