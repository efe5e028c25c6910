package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/adapters/primary/http/dto"
	"mlops-hub-backend/internal/core/domain"
)

func (h *Handler) ListInferenceServices(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		services []*domain.InferenceService
		err      error
	)
	switch {
	case c.Query("name") != "":
		var svc *domain.InferenceService
		svc, err = h.serviceSvc.GetByName(ctx, c.Query("name"))
		if err != nil {
			mapDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, svc)
		return
	case c.Query("status") != "":
		services, err = h.serviceSvc.ListByStatus(ctx, c.Query("status"))
	case c.Query("namespace") != "":
		services, err = h.serviceSvc.ListByNamespace(ctx, c.Query("namespace"))
	case c.Query("q") != "":
		services, err = h.serviceSvc.Search(ctx, c.Query("q"))
	default:
		services, err = h.serviceSvc.List(ctx)
	}
	if err != nil {
		log.WithError(err).Error("list inference services failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) GetInferenceService(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	svc, err := h.serviceSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) CreateInferenceService(c *gin.Context) {
	var req dto.CreateInferenceServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.serviceSvc.Create(c.Request.Context(), &domain.InferenceService{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Namespace:   req.Namespace,
		Replicas:    req.Replicas,
		CPU:         req.CPU,
		Memory:      req.Memory,
		Image:       req.Image,
		Port:        req.Port,
		BaseURL:     req.BaseURL,
		Tags:        req.Tags,
	})
	if err != nil {
		log.WithError(err).Error("create inference service failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *Handler) UpdateInferenceService(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInferenceServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.serviceSvc.Update(c.Request.Context(), id, req.Updates())
	if err != nil {
		log.WithError(err).Error("update inference service failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) UpdateInferenceServiceStatus(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.serviceSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) DeleteInferenceService(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	if err := h.serviceSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete inference service failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) DeployInferenceService(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	svc, err := h.serviceSvc.Deploy(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("deploy inference service failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) UndeployInferenceService(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	svc, err := h.serviceSvc.Undeploy(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("undeploy inference service failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
