package ports

import "context"

// ExperimentTracker is the facade over the experiment-tracking server. All
// payloads are generic JSON values; callers extract the fields they need.
type ExperimentTracker interface {
	CreateExperiment(ctx context.Context, name string) (string, error)
	GetExperiment(ctx context.Context, experimentID string) (interface{}, error)
	ListExperiments(ctx context.Context) (interface{}, error)
	SearchExperiments(ctx context.Context, filter string) (interface{}, error)
	CreateRun(ctx context.Context, experimentID string) (interface{}, error)
	GetRun(ctx context.Context, runID string) (interface{}, error)
	SearchRuns(ctx context.Context, experimentID, filter string) (interface{}, error)
	MetricHistory(ctx context.Context, runID, metricKey string) (interface{}, error)
	SearchRegisteredModels(ctx context.Context, filter string) (interface{}, error)
}

// ClusterClient is the facade over the cluster-compute dashboard.
type ClusterClient interface {
	ClusterStatus(ctx context.Context) (interface{}, error)
	Jobs(ctx context.Context) (interface{}, error)
	Job(ctx context.Context, jobID string) (interface{}, error)
	Nodes(ctx context.Context) (interface{}, error)
}
