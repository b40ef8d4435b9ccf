package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"

	inboundhttp "github.com/architeacher/device-inventory/internal/adapters/inbound/http"
	"github.com/architeacher/device-inventory/internal/adapters/repos"
	"github.com/architeacher/device-inventory/internal/config"
	"github.com/architeacher/device-inventory/internal/infrastructure"
	"github.com/architeacher/device-inventory/internal/infrastructure/mongodb"
	"github.com/architeacher/device-inventory/internal/services"
	"github.com/architeacher/device-inventory/internal/usecases"
	"github.com/architeacher/device-inventory/pkg/logger"
	"github.com/architeacher/device-inventory/pkg/metrics/noop"
	"github.com/hashicorp/vault/api"
)

func defaultOptions() []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithMetrics(),
		WithTracing(),
		WithSecretsStorage(),
		WithStorage(),
		WithDevicesRepository(),
		WithDevicesService(),
		WithApplication(),
		WithHTTPServer(),
	}
}

func WithConfig() DependencyOption {
	return func(_ context.Context, d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(_ context.Context, d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

func WithMetrics() DependencyOption {
	return func(_ context.Context, d *dependencies) error {
		d.infra.metricsClient = noop.NewMetricsClient()

		return nil
	}
}

func WithTracing() DependencyOption {
	return func(_ context.Context, d *dependencies) error {
		if !d.config.Telemetry.Enabled {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.cleanupFuncs["tracer"] = shutdown

		return nil
	}
}

// WithSecretsStorage wires the Vault client and overlays the storage URI from
// the secrets store. Disabled installations keep their environment values.
func WithSecretsStorage() DependencyOption {
	return func(ctx context.Context, d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = d.config.SecretsStorage.Address
		vaultConfig.Timeout = d.config.SecretsStorage.Timeout

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("creating Vault client: %w", err)
		}

		d.repos.secretsRepo = repos.NewVaultRepository(client)
		d.repos.secretsRepo.SetToken(d.config.SecretsStorage.Token)

		if err := config.LoadSecrets(ctx, d.config, d.repos.secretsRepo); err != nil {
			return err
		}

		return nil
	}
}

func WithStorage() DependencyOption {
	return func(ctx context.Context, d *dependencies) error {
		client, collection, err := mongodb.Connect(ctx, d.config.Storage)
		if err != nil {
			return err
		}

		d.infra.storageClient = client
		d.infra.collection = collection
		d.cleanupFuncs["storage"] = func(shutdownCtx context.Context) error {
			return client.Disconnect(shutdownCtx)
		}

		return nil
	}
}

func WithDevicesRepository() DependencyOption {
	return func(_ context.Context, d *dependencies) error {
		repo := repos.NewDevicesRepository(d.infra.collection, d.infra.storageClient, d.infra.logger)

		d.repos.devicesRepo = repo
		d.services.healthChecker = repo

		return nil
	}
}

func WithDevicesService() DependencyOption {
	return func(_ context.Context, d *dependencies) error {
		d.services.devices = services.NewDevicesService(d.repos.devicesRepo)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(_ context.Context, d *dependencies) error {
		d.app = usecases.NewApplication(
			d.services.devices,
			d.services.healthChecker,
			d.infra.logger,
			d.infra.tracerProvider,
			d.infra.metricsClient,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(_ context.Context, d *dependencies) error {
		router := inboundhttp.NewRouter(d.config, d.app, d.infra.logger)

		d.infra.httpServer = &http.Server{
			Addr:         net.JoinHostPort(d.config.HTTPServer.Host, fmt.Sprintf("%d", d.config.HTTPServer.Port)),
			Handler:      router,
			ReadTimeout:  d.config.HTTPServer.ReadTimeout,
			WriteTimeout: d.config.HTTPServer.WriteTimeout,
			IdleTimeout:  d.config.HTTPServer.IdleTimeout,
		}
		d.cleanupFuncs["http-server"] = d.infra.httpServer.Shutdown

		return nil
	}
}
