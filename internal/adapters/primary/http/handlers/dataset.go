package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/adapters/primary/http/dto"
)

func getID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) ListDatasets(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		datasets, err := h.datasetSvc.Search(c.Request.Context(), name)
		if err != nil {
			log.WithError(err).Error("search datasets failed")
			mapDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, datasets)
		return
	}

	if c.Query("limit") != "" || c.Query("offset") != "" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		datasets, total, err := h.datasetSvc.ListPaged(c.Request.Context(), limit, offset)
		if err != nil {
			log.WithError(err).Error("list datasets failed")
			mapDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ListDatasetsResponse{Items: datasets, Total: total})
		return
	}

	datasets, err := h.datasetSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list datasets failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, datasets)
}

func (h *Handler) GetDataset(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	dataset, err := h.datasetSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataset)
}

func (h *Handler) CreateDataset(c *gin.Context) {
	var req dto.CreateDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dataset, err := h.datasetSvc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		log.WithError(err).Error("create dataset failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dataset)
}

func (h *Handler) UpdateDataset(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dataset, err := h.datasetSvc.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		log.WithError(err).Error("update dataset failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataset)
}

func (h *Handler) DeleteDataset(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	if err := h.datasetSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete dataset failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DownloadLatestCommitted streams the first file of the newest committed
// version of the dataset.
func (h *Handler) DownloadLatestCommitted(c *gin.Context) {
	id, ok := getID(c, "id")
	if !ok {
		return
	}

	file, content, err := h.versionSvc.DownloadLatestCommitted(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.FileName))
	c.Data(http.StatusOK, "application/octet-stream", content)
}
