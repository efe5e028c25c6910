package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

// MockExperimentTracker is a mock of ExperimentTracker.
type MockExperimentTracker struct {
	mock.Mock
}

func (m *MockExperimentTracker) CreateExperiment(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockExperimentTracker) GetExperiment(ctx context.Context, experimentID string) (interface{}, error) {
	args := m.Called(ctx, experimentID)
	return args.Get(0), args.Error(1)
}

func (m *MockExperimentTracker) ListExperiments(ctx context.Context) (interface{}, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

func (m *MockExperimentTracker) SearchExperiments(ctx context.Context, filter string) (interface{}, error) {
	args := m.Called(ctx, filter)
	return args.Get(0), args.Error(1)
}

func (m *MockExperimentTracker) CreateRun(ctx context.Context, experimentID string) (interface{}, error) {
	args := m.Called(ctx, experimentID)
	return args.Get(0), args.Error(1)
}

func (m *MockExperimentTracker) GetRun(ctx context.Context, runID string) (interface{}, error) {
	args := m.Called(ctx, runID)
	return args.Get(0), args.Error(1)
}

func (m *MockExperimentTracker) SearchRuns(ctx context.Context, experimentID, filter string) (interface{}, error) {
	args := m.Called(ctx, experimentID, filter)
	return args.Get(0), args.Error(1)
}

func (m *MockExperimentTracker) MetricHistory(ctx context.Context, runID, metricKey string) (interface{}, error) {
	args := m.Called(ctx, runID, metricKey)
	return args.Get(0), args.Error(1)
}

func (m *MockExperimentTracker) SearchRegisteredModels(ctx context.Context, filter string) (interface{}, error) {
	args := m.Called(ctx, filter)
	return args.Get(0), args.Error(1)
}

// MockClusterClient is a mock of ClusterClient.
type MockClusterClient struct {
	mock.Mock
}

func (m *MockClusterClient) ClusterStatus(ctx context.Context) (interface{}, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

func (m *MockClusterClient) Jobs(ctx context.Context) (interface{}, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

func (m *MockClusterClient) Job(ctx context.Context, jobID string) (interface{}, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0), args.Error(1)
}

func (m *MockClusterClient) Nodes(ctx context.Context) (interface{}, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

// MockDeployer is a mock of Deployer.
type MockDeployer struct {
	mock.Mock
}

func (m *MockDeployer) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockDeployer) Deploy(ctx context.Context, svc *domain.InferenceService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockDeployer) Undeploy(ctx context.Context, namespace, name string) error {
	args := m.Called(ctx, namespace, name)
	return args.Error(0)
}

func (m *MockDeployer) Status(ctx context.Context, namespace, name string) (*ports.DeploymentStatus, error) {
	args := m.Called(ctx, namespace, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.DeploymentStatus), args.Error(1)
}
