package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mlops-hub-backend/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrDatasetNotFound),
		errors.Is(err, domain.ErrVersionNotFound),
		errors.Is(err, domain.ErrFileNotFound),
		errors.Is(err, domain.ErrInferenceServiceNotFound),
		errors.Is(err, domain.ErrEntrypointNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrInferenceServiceNameConflict),
		errors.Is(err, domain.ErrEntrypointNameConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation / state errors
	case errors.Is(err, domain.ErrInvalidDatasetName),
		errors.Is(err, domain.ErrInvalidInferenceServiceName),
		errors.Is(err, domain.ErrInvalidEntrypointName),
		errors.Is(err, domain.ErrVersionNotDraft),
		errors.Is(err, domain.ErrVersionCommitted),
		errors.Is(err, domain.ErrNoInferenceService),
		errors.Is(err, domain.ErrNoBaseURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrEntrypointNotActive):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  domain.CallStatusError,
			"message": err.Error(),
		})

	case errors.Is(err, domain.ErrBadGateway):
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  domain.CallStatusError,
			"message": err.Error(),
		})

	case errors.Is(err, domain.ErrDeployerNotAvailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// mapVersionWorkflowError covers the dataset-versioning surface, where the
// frontend contract reports missing datasets, versions and files as 400.
func mapVersionWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDatasetNotFound),
		errors.Is(err, domain.ErrVersionNotFound),
		errors.Is(err, domain.ErrFileNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		mapDomainError(c, err)
	}
}
