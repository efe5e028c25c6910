package dto

import "mlops-hub-backend/internal/core/domain"

type CreateEntrypointRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Version            string   `json:"version"`
	Type               string   `json:"type"`
	Status             string   `json:"status"`
	Endpoint           string   `json:"endpoint"`
	Method             string   `json:"method"`
	ModelID            *int64   `json:"modelId"`
	ModelName          string   `json:"modelName"`
	ModelType          string   `json:"modelType"`
	InferenceServiceID *int64   `json:"inferenceServiceId"`
	Path               string   `json:"path"`
	FullInferencePath  string   `json:"fullInferencePath"`
	Tags               []string `json:"tags"`
	Visibility         string   `json:"visibility"`
	OwnerID            *int64   `json:"ownerId"`
	OwnerUsername      string   `json:"ownerUsername"`
	DeploymentConfig   string   `json:"deploymentConfig"`
}

func (r *CreateEntrypointRequest) ToDomain() *domain.Entrypoint {
	return &domain.Entrypoint{
		Name:               r.Name,
		Description:        r.Description,
		Version:            r.Version,
		Type:               r.Type,
		Status:             r.Status,
		Endpoint:           r.Endpoint,
		Method:             r.Method,
		ModelID:            r.ModelID,
		ModelName:          r.ModelName,
		ModelType:          r.ModelType,
		InferenceServiceID: r.InferenceServiceID,
		Path:               r.Path,
		FullInferencePath:  r.FullInferencePath,
		Tags:               r.Tags,
		Visibility:         r.Visibility,
		OwnerID:            r.OwnerID,
		OwnerUsername:      r.OwnerUsername,
		DeploymentConfig:   r.DeploymentConfig,
	}
}

type UpdateEntrypointRequest struct {
	Name               *string   `json:"name"`
	Description        *string   `json:"description"`
	Version            *string   `json:"version"`
	Type               *string   `json:"type"`
	Status             *string   `json:"status"`
	Endpoint           *string   `json:"endpoint"`
	Method             *string   `json:"method"`
	InferenceServiceID *int64    `json:"inferenceServiceId"`
	Path               *string   `json:"path"`
	ModelType          *string   `json:"modelType"`
	FullInferencePath  *string   `json:"fullInferencePath"`
	Tags               *[]string `json:"tags"`
	Visibility         *string   `json:"visibility"`
	DeploymentConfig   *string   `json:"deploymentConfig"`
	MetricsData        *string   `json:"metricsData"`
}

func (r *UpdateEntrypointRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Version != nil {
		updates["version"] = *r.Version
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Endpoint != nil {
		updates["endpoint"] = *r.Endpoint
	}
	if r.Method != nil {
		updates["method"] = *r.Method
	}
	if r.InferenceServiceID != nil {
		updates["inference_service_id"] = *r.InferenceServiceID
	}
	if r.Path != nil {
		updates["path"] = *r.Path
	}
	if r.ModelType != nil {
		updates["model_type"] = *r.ModelType
	}
	if r.FullInferencePath != nil {
		updates["full_inference_path"] = *r.FullInferencePath
	}
	if r.Tags != nil {
		updates["tags"] = *r.Tags
	}
	if r.Visibility != nil {
		updates["visibility"] = *r.Visibility
	}
	if r.DeploymentConfig != nil {
		updates["deployment_config"] = *r.DeploymentConfig
	}
	if r.MetricsData != nil {
		updates["metrics_data"] = *r.MetricsData
	}
	return updates
}
