package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	ObjectStorage ObjectStorageConfig
	Inference     InferenceConfig
	MLflow        MLflowConfig
	Ray           RayConfig
	Kubernetes    KubernetesConfig
	Jobs          JobsConfig
	Logger        LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type ObjectStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type InferenceConfig struct {
	Timeout time.Duration
}

type MLflowConfig struct {
	Enabled  bool
	URL      string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type RayConfig struct {
	Enabled bool
	URL     string
	Timeout time.Duration
}

type KubernetesConfig struct {
	Enabled        bool
	InCluster      bool
	KubeConfigPath string
	Namespace      string
}

type JobsConfig struct {
	HealthSyncEnabled  bool
	HealthSyncSchedule string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "mlops")
	v.SetDefault("DB_PASSWORD", "mlops")
	v.SetDefault("DB_NAME", "mlops_hub")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("OBJECT_STORAGE_ENDPOINT", "localhost:9000")
	v.SetDefault("OBJECT_STORAGE_ACCESS_KEY", "minioadmin")
	v.SetDefault("OBJECT_STORAGE_SECRET_KEY", "minioadmin")
	v.SetDefault("OBJECT_STORAGE_BUCKET", "mlops-hub")
	v.SetDefault("OBJECT_STORAGE_USE_SSL", false)

	v.SetDefault("INFERENCE_TIMEOUT", "30s")

	v.SetDefault("MLFLOW_ENABLED", true)
	v.SetDefault("MLFLOW_URL", "http://localhost:5000")
	v.SetDefault("MLFLOW_TIMEOUT", "30s")
	v.SetDefault("MLFLOW_CACHE_TTL", "60s")

	v.SetDefault("RAY_ENABLED", true)
	v.SetDefault("RAY_URL", "http://localhost:8265")
	v.SetDefault("RAY_TIMEOUT", "30s")

	v.SetDefault("K8S_ENABLED", false)
	v.SetDefault("K8S_IN_CLUSTER", false)
	v.SetDefault("K8S_KUBECONFIG", "")
	v.SetDefault("K8S_NAMESPACE", "model-serving")

	v.SetDefault("JOBS_HEALTH_SYNC_ENABLED", true)
	v.SetDefault("JOBS_HEALTH_SYNC_SCHEDULE", "@every 1m")

	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v, "DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		ObjectStorage: ObjectStorageConfig{
			Endpoint:  v.GetString("OBJECT_STORAGE_ENDPOINT"),
			AccessKey: v.GetString("OBJECT_STORAGE_ACCESS_KEY"),
			SecretKey: v.GetString("OBJECT_STORAGE_SECRET_KEY"),
			Bucket:    v.GetString("OBJECT_STORAGE_BUCKET"),
			UseSSL:    v.GetBool("OBJECT_STORAGE_USE_SSL"),
		},
		Inference: InferenceConfig{
			Timeout: parseDuration(v, "INFERENCE_TIMEOUT", 30*time.Second),
		},
		MLflow: MLflowConfig{
			Enabled:  v.GetBool("MLFLOW_ENABLED"),
			URL:      v.GetString("MLFLOW_URL"),
			Timeout:  parseDuration(v, "MLFLOW_TIMEOUT", 30*time.Second),
			CacheTTL: parseDuration(v, "MLFLOW_CACHE_TTL", time.Minute),
		},
		Ray: RayConfig{
			Enabled: v.GetBool("RAY_ENABLED"),
			URL:     v.GetString("RAY_URL"),
			Timeout: parseDuration(v, "RAY_TIMEOUT", 30*time.Second),
		},
		Kubernetes: KubernetesConfig{
			Enabled:        v.GetBool("K8S_ENABLED"),
			InCluster:      v.GetBool("K8S_IN_CLUSTER"),
			KubeConfigPath: v.GetString("K8S_KUBECONFIG"),
			Namespace:      v.GetString("K8S_NAMESPACE"),
		},
		Jobs: JobsConfig{
			HealthSyncEnabled:  v.GetBool("JOBS_HEALTH_SYNC_ENABLED"),
			HealthSyncSchedule: v.GetString("JOBS_HEALTH_SYNC_SCHEDULE"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
