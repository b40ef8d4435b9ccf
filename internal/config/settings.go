package config

import "time"

// Build information, set at compile time via ldflags.
var (
	ServiceVersion = "dev"
	CommitSHA      = "unknown"
)

type (
	AppConfig struct {
		Name string `envconfig:"APP_NAME" default:"device-inventory"`
		Env  string `envconfig:"APP_ENV" default:"dev"`
	}

	HTTPServerConfig struct {
		Host            string        `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0"`
		Port            int           `envconfig:"HTTP_SERVER_PORT" default:"8080"`
		ReadTimeout     time.Duration `envconfig:"HTTP_SERVER_READ_TIMEOUT" default:"10s"`
		WriteTimeout    time.Duration `envconfig:"HTTP_SERVER_WRITE_TIMEOUT" default:"15s"`
		IdleTimeout     time.Duration `envconfig:"HTTP_SERVER_IDLE_TIMEOUT" default:"60s"`
		ShutdownTimeout time.Duration `envconfig:"HTTP_SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	}

	// StorageConfig points the service at its document store. ServerSelectionTimeout
	// bounds how long health probes wait before declaring the store unreachable.
	StorageConfig struct {
		URI                    string        `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
		Database               string        `envconfig:"MONGODB_DB_NAME" default:"device_inventory"`
		Collection             string        `envconfig:"MONGODB_COLLECTION_NAME" default:"devices"`
		ConnectTimeout         time.Duration `envconfig:"MONGODB_CONNECT_TIMEOUT" default:"10s"`
		ServerSelectionTimeout time.Duration `envconfig:"MONGODB_SERVER_SELECTION_TIMEOUT" default:"2s"`
	}

	SecretsStorageConfig struct {
		Enabled   bool          `envconfig:"VAULT_ENABLED" default:"false"`
		Address   string        `envconfig:"VAULT_ADDR" default:"http://localhost:8200"`
		Token     string        `envconfig:"VAULT_TOKEN"`
		MountPath string        `envconfig:"VAULT_MOUNT_PATH" default:"secret/data/device-inventory"`
		Timeout   time.Duration `envconfig:"VAULT_TIMEOUT" default:"5s"`
	}

	AccessLogConfig struct {
		Enabled            bool `envconfig:"ACCESS_LOG_ENABLED" default:"true"`
		LogHealthChecks    bool `envconfig:"ACCESS_LOG_HEALTH_CHECKS" default:"false"`
		IncludeQueryParams bool `envconfig:"ACCESS_LOG_QUERY_PARAMS" default:"false"`
	}

	LoggingConfig struct {
		Level     string `envconfig:"LOG_LEVEL" default:"info"`
		Format    string `envconfig:"LOG_FORMAT" default:"json"`
		AccessLog AccessLogConfig
	}

	TelemetryConfig struct {
		Enabled           bool          `envconfig:"OTEL_ENABLED" default:"false"`
		CollectorEndpoint string        `envconfig:"OTEL_COLLECTOR_ENDPOINT" default:"localhost:4317"`
		ConnectTimeout    time.Duration `envconfig:"OTEL_CONNECT_TIMEOUT" default:"5s"`
		SamplingRatio     float64       `envconfig:"OTEL_SAMPLING_RATIO" default:"1.0"`
	}

	ServiceConfig struct {
		App            AppConfig
		HTTPServer     HTTPServerConfig
		Storage        StorageConfig
		SecretsStorage SecretsStorageConfig
		Logging        LoggingConfig
		Telemetry      TelemetryConfig
	}
)
