package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetClusterStatus(c *gin.Context) {
	result, err := h.clusterSvc.Status(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("cluster status failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListClusterJobs(c *gin.Context) {
	result, err := h.clusterSvc.Jobs(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list cluster jobs failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetClusterJob(c *gin.Context) {
	result, err := h.clusterSvc.Job(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListClusterNodes(c *gin.Context) {
	result, err := h.clusterSvc.Nodes(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list cluster nodes failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
