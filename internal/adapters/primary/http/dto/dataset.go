// Package dto holds request payloads and list envelopes for the HTTP
// surface. Entity responses serialize the domain types directly; their JSON
// tags are the wire contract.
package dto

import "mlops-hub-backend/internal/core/domain"

type CreateDatasetRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateDatasetRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type ListDatasetsResponse struct {
	Items []*domain.Dataset `json:"items"`
	Total int               `json:"total"`
}
