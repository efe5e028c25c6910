package domain

import "errors"

var (
	ErrDatasetNotFound    = errors.New("dataset not found")
	ErrVersionNotFound    = errors.New("dataset version not found")
	ErrFileNotFound       = errors.New("dataset file not found")
	ErrVersionNotDraft    = errors.New("version is not in draft status")
	ErrVersionCommitted   = errors.New("committed versions cannot be deleted")
	ErrInvalidDatasetName = errors.New("dataset name is required")

	ErrInferenceServiceNotFound     = errors.New("inference service not found")
	ErrInferenceServiceNameConflict = errors.New("inference service with this name already exists")
	ErrInvalidInferenceServiceName  = errors.New("inference service name is required")

	ErrEntrypointNotFound     = errors.New("entrypoint not found")
	ErrEntrypointNameConflict = errors.New("entrypoint with this name already exists")
	ErrInvalidEntrypointName  = errors.New("entrypoint name is required")
	ErrEntrypointNotActive    = errors.New("entrypoint is not active")
	ErrNoInferenceService     = errors.New("entrypoint does not have an inference service configured")
	ErrNoBaseURL              = errors.New("inference service does not have a base URL configured")

	ErrBadGateway = errors.New("failed to forward request to inference service")

	ErrDeployerNotAvailable = errors.New("deployment integration is not available")
)
