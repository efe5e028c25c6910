package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"mlops-hub-backend/internal/core/services"
	"mlops-hub-backend/internal/testutil"
)

// routerMocks bundles every output-port mock behind a test router.
type routerMocks struct {
	datasetRepo    *testutil.MockDatasetRepo
	versionRepo    *testutil.MockDatasetVersionRepo
	fileRepo       *testutil.MockDatasetFileRepo
	serviceRepo    *testutil.MockInferenceServiceRepo
	entrypointRepo *testutil.MockEntrypointRepo
	historyRepo    *testutil.MockEntrypointHistoryRepo
	store          *testutil.MockObjectStore
	client         *testutil.MockInferenceClient
	tracker        *testutil.MockExperimentTracker
	cluster        *testutil.MockClusterClient
	deployer       *testutil.MockDeployer
}

func setupRouter() (*routerMocks, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	m := &routerMocks{
		datasetRepo:    new(testutil.MockDatasetRepo),
		versionRepo:    new(testutil.MockDatasetVersionRepo),
		fileRepo:       new(testutil.MockDatasetFileRepo),
		serviceRepo:    new(testutil.MockInferenceServiceRepo),
		entrypointRepo: new(testutil.MockEntrypointRepo),
		historyRepo:    new(testutil.MockEntrypointHistoryRepo),
		store:          new(testutil.MockObjectStore),
		client:         new(testutil.MockInferenceClient),
		tracker:        new(testutil.MockExperimentTracker),
		cluster:        new(testutil.MockClusterClient),
		deployer:       new(testutil.MockDeployer),
	}

	historySvc := services.NewHistoryService(m.historyRepo)
	datasetSvc := services.NewDatasetService(m.datasetRepo, m.versionRepo, m.fileRepo, m.store)
	versionSvc := services.NewDatasetVersionService(m.versionRepo, m.fileRepo, m.datasetRepo, m.store)
	serviceSvc := services.NewInferenceServiceService(m.serviceRepo, m.deployer)
	entrypointSvc := services.NewEntrypointService(m.entrypointRepo, m.serviceRepo, historySvc)
	gatewaySvc := services.NewGatewayService(m.entrypointRepo, m.serviceRepo, m.client, historySvc)
	experimentSvc := services.NewExperimentService(m.tracker, time.Minute)
	clusterSvc := services.NewClusterService(m.cluster)

	h := New(datasetSvc, versionSvc, serviceSvc, entrypointSvc, gatewaySvc, historySvc, experimentSvc, clusterSvc)
	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)

	return m, r
}
