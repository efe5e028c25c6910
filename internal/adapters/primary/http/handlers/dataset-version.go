package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/core/services"
)

func (h *Handler) CreateVersion(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	version, err := h.versionSvc.CreateVersion(c.Request.Context(), datasetID, c.Query("description"))
	if err != nil {
		log.WithError(err).Error("create dataset version failed")
		mapVersionWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

func (h *Handler) ListVersions(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	if number := c.Query("versionNumber"); number != "" {
		n, err := strconv.Atoi(number)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid versionNumber"})
			return
		}
		version, err := h.versionSvc.GetVersionByNumber(c.Request.Context(), datasetID, n)
		if err != nil {
			mapVersionWorkflowError(c, err)
			return
		}
		c.JSON(http.StatusOK, version)
		return
	}

	versions, err := h.versionSvc.ListVersions(c.Request.Context(), datasetID)
	if err != nil {
		mapVersionWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

func (h *Handler) GetVersion(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	version, err := h.versionSvc.GetVersion(c.Request.Context(), datasetID, c.Param("versionId"))
	if err != nil {
		mapVersionWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

func (h *Handler) CommitVersion(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	version, err := h.versionSvc.CommitVersion(c.Request.Context(), datasetID, c.Param("versionId"))
	if err != nil {
		log.WithError(err).Error("commit dataset version failed")
		mapVersionWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

func (h *Handler) ArchiveVersion(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	version, err := h.versionSvc.ArchiveVersion(c.Request.Context(), datasetID, c.Param("versionId"))
	if err != nil {
		log.WithError(err).Error("archive dataset version failed")
		mapVersionWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

func (h *Handler) DeleteVersion(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	if err := h.versionSvc.DeleteVersion(c.Request.Context(), datasetID, c.Param("versionId")); err != nil {
		log.WithError(err).Error("delete dataset version failed")
		mapVersionWorkflowError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) UploadFile(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upload := services.FileUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     content,
	}

	file, err := h.versionSvc.UploadFile(c.Request.Context(), datasetID, c.Param("versionId"), upload)
	if err != nil {
		log.WithError(err).Error("upload dataset file failed")
		mapVersionWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

func (h *Handler) ListFiles(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	files, err := h.versionSvc.GetFilesByVersion(c.Request.Context(), datasetID, c.Param("versionId"))
	if err != nil {
		mapVersionWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

func (h *Handler) DownloadFile(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	file, content, err := h.versionSvc.DownloadFile(c.Request.Context(), datasetID, c.Param("versionId"), c.Param("fileId"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.FileName))
	c.Data(http.StatusOK, "application/octet-stream", content)
}

func (h *Handler) DeleteFile(c *gin.Context) {
	datasetID, ok := getID(c, "id")
	if !ok {
		return
	}

	if err := h.versionSvc.DeleteFile(c.Request.Context(), datasetID, c.Param("versionId"), c.Param("fileId")); err != nil {
		log.WithError(err).Error("delete dataset file failed")
		mapVersionWorkflowError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
