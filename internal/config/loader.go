package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/architeacher/device-inventory/internal/ports"
	"github.com/kelseyhightower/envconfig"
)

const configPathEnvVar = "CONFIG_PATH"

// fileOverrides mirrors the optional JSON config file. Only storage settings
// may be overridden there; everything else stays environment-driven.
type fileOverrides struct {
	MongoDB struct {
		URI        string `json:"uri"`
		Database   string `json:"database"`
		Collection string `json:"collection"`
	} `json:"mongodb"`
}

// Init builds the service configuration from the environment, then layers the
// optional CONFIG_PATH file on top. A CONFIG_PATH that points at a missing or
// malformed file is a startup error rather than a silent fallback.
func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing environment config: %w", err)
	}

	if path := os.Getenv(configPathEnvVar); path != "" {
		if err := applyFileOverrides(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := validateStorageURI(cfg.Storage.URI); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFileOverrides(cfg *ServiceConfig, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}

	var overrides fileOverrides
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("parsing config file %q: %w", path, err)
	}

	if overrides.MongoDB.URI != "" {
		cfg.Storage.URI = overrides.MongoDB.URI
	}
	if overrides.MongoDB.Database != "" {
		cfg.Storage.Database = overrides.MongoDB.Database
	}
	if overrides.MongoDB.Collection != "" {
		cfg.Storage.Collection = overrides.MongoDB.Collection
	}

	return nil
}

func validateStorageURI(uri string) error {
	if strings.HasPrefix(uri, "mongodb://") || strings.HasPrefix(uri, "mongodb+srv://") {
		return nil
	}

	return fmt.Errorf("storage URI %q must use the mongodb:// or mongodb+srv:// scheme", uri)
}

// LoadSecrets overlays the storage URI from the secrets store when one is
// configured. Missing keys leave the environment-provided values untouched.
func LoadSecrets(ctx context.Context, cfg *ServiceConfig, secrets ports.SecretsRepository) error {
	secret, err := secrets.GetSecrets(ctx, cfg.SecretsStorage.MountPath)
	if err != nil {
		return fmt.Errorf("fetching secrets from %q: %w", cfg.SecretsStorage.MountPath, err)
	}

	if secret == nil || secret.Data == nil {
		return nil
	}

	data := secret.Data
	// KV v2 nests the payload under a "data" key.
	if nested, ok := data["data"].(map[string]any); ok {
		data = nested
	}

	if uri, ok := data["mongodb_uri"].(string); ok && uri != "" {
		cfg.Storage.URI = uri
	}

	return nil
}
