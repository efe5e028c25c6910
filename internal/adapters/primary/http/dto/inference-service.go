package dto

type CreateInferenceServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Namespace   string   `json:"namespace"`
	Replicas    int      `json:"replicas"`
	CPU         string   `json:"cpu"`
	Memory      string   `json:"memory"`
	Image       string   `json:"image"`
	Port        int      `json:"port"`
	BaseURL     string   `json:"baseUrl"`
	Tags        []string `json:"tags"`
}

// UpdateInferenceServiceRequest carries a field mask: only non-nil fields are
// applied.
type UpdateInferenceServiceRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Namespace   *string   `json:"namespace"`
	Replicas    *int      `json:"replicas"`
	CPU         *string   `json:"cpu"`
	Memory      *string   `json:"memory"`
	Image       *string   `json:"image"`
	Port        *int      `json:"port"`
	BaseURL     *string   `json:"baseUrl"`
	Tags        *[]string `json:"tags"`
}

// Updates flattens the mask into the map form the service layer consumes.
func (r *UpdateInferenceServiceRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Namespace != nil {
		updates["namespace"] = *r.Namespace
	}
	if r.Replicas != nil {
		updates["replicas"] = *r.Replicas
	}
	if r.CPU != nil {
		updates["cpu"] = *r.CPU
	}
	if r.Memory != nil {
		updates["memory"] = *r.Memory
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.Port != nil {
		updates["port"] = *r.Port
	}
	if r.BaseURL != nil {
		updates["base_url"] = *r.BaseURL
	}
	if r.Tags != nil {
		updates["tags"] = *r.Tags
	}
	return updates
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
