package handlers

import (
	"github.com/gin-gonic/gin"

	"mlops-hub-backend/internal/core/services"
)

type Handler struct {
	datasetSvc    *services.DatasetService
	versionSvc    *services.DatasetVersionService
	serviceSvc    *services.InferenceServiceService
	entrypointSvc *services.EntrypointService
	gatewaySvc    *services.GatewayService
	historySvc    *services.HistoryService
	experimentSvc *services.ExperimentService
	clusterSvc    *services.ClusterService
}

func New(
	datasetSvc *services.DatasetService,
	versionSvc *services.DatasetVersionService,
	serviceSvc *services.InferenceServiceService,
	entrypointSvc *services.EntrypointService,
	gatewaySvc *services.GatewayService,
	historySvc *services.HistoryService,
	experimentSvc *services.ExperimentService,
	clusterSvc *services.ClusterService,
) *Handler {
	return &Handler{
		datasetSvc:    datasetSvc,
		versionSvc:    versionSvc,
		serviceSvc:    serviceSvc,
		entrypointSvc: entrypointSvc,
		gatewaySvc:    gatewaySvc,
		historySvc:    historySvc,
		experimentSvc: experimentSvc,
		clusterSvc:    clusterSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Datasets
	r.GET("/datasets", h.ListDatasets)
	r.GET("/datasets/:id", h.GetDataset)
	r.POST("/datasets", h.CreateDataset)
	r.PATCH("/datasets/:id", h.UpdateDataset)
	r.DELETE("/datasets/:id", h.DeleteDataset)
	r.GET("/datasets/:id/download", h.DownloadLatestCommitted)

	// Dataset Versions
	r.POST("/datasets/:id/versions", h.CreateVersion)
	r.GET("/datasets/:id/versions", h.ListVersions)
	r.GET("/datasets/:id/versions/:versionId", h.GetVersion)
	r.PUT("/datasets/:id/versions/:versionId/commit", h.CommitVersion)
	r.PUT("/datasets/:id/versions/:versionId/archive", h.ArchiveVersion)
	r.DELETE("/datasets/:id/versions/:versionId", h.DeleteVersion)

	// Dataset Files
	r.POST("/datasets/:id/versions/:versionId/files", h.UploadFile)
	r.GET("/datasets/:id/versions/:versionId/files", h.ListFiles)
	r.GET("/datasets/:id/versions/:versionId/files/:fileId/download", h.DownloadFile)
	r.DELETE("/datasets/:id/versions/:versionId/files/:fileId", h.DeleteFile)

	// Inference Services
	r.GET("/inference-services", h.ListInferenceServices)
	r.GET("/inference-services/:id", h.GetInferenceService)
	r.POST("/inference-services", h.CreateInferenceService)
	r.PATCH("/inference-services/:id", h.UpdateInferenceService)
	r.PUT("/inference-services/:id/status", h.UpdateInferenceServiceStatus)
	r.DELETE("/inference-services/:id", h.DeleteInferenceService)
	r.POST("/inference-services/:id/deploy", h.DeployInferenceService)
	r.POST("/inference-services/:id/undeploy", h.UndeployInferenceService)

	// Entrypoints
	r.GET("/entrypoints", h.ListEntrypoints)
	r.GET("/entrypoints/:id", h.GetEntrypoint)
	r.POST("/entrypoints", h.CreateEntrypoint)
	r.PATCH("/entrypoints/:id", h.UpdateEntrypoint)
	r.PUT("/entrypoints/:id/status", h.UpdateEntrypointStatus)
	r.DELETE("/entrypoints/:id", h.DeleteEntrypoint)

	// Gateway + history
	r.POST("/entrypoints/:id/infer", h.Infer)
	r.GET("/entrypoints/:id/history", h.GetHistory)
	r.GET("/entrypoints/:id/history/count", h.GetHistoryCount)
	r.GET("/entrypoints/:id/metrics", h.GetEntrypointMetrics)
	r.GET("/entrypoints/:id/metrics/daily", h.GetDailyMetrics)

	// Experiment tracking facade
	r.POST("/experiments", h.CreateExperiment)
	r.GET("/experiments", h.ListExperiments)
	r.GET("/experiments/:id", h.GetExperiment)
	r.POST("/experiments/:id/runs", h.CreateRun)
	r.GET("/experiments/:id/runs", h.SearchRuns)
	r.GET("/runs/:id", h.GetRun)
	r.GET("/runs/:id/metrics", h.GetMetricHistory)
	r.GET("/registered-models", h.SearchRegisteredModels)

	// Cluster facade
	r.GET("/cluster/status", h.GetClusterStatus)
	r.GET("/cluster/jobs", h.ListClusterJobs)
	r.GET("/cluster/jobs/:id", h.GetClusterJob)
	r.GET("/cluster/nodes", h.ListClusterNodes)
}
