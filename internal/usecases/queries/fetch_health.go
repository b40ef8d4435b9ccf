package queries

import (
	"context"
	"time"

	"github.com/architeacher/device-inventory/internal/ports"
	"github.com/architeacher/device-inventory/pkg/decorator"
	"github.com/architeacher/device-inventory/pkg/logger"
	"github.com/architeacher/device-inventory/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const healthStatusOK = "ok"

type (
	FetchHealthQuery struct{}

	HealthResult struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}

	FetchHealthQueryHandler = decorator.QueryHandler[FetchHealthQuery, *HealthResult]

	fetchHealthQueryHandler struct {
		dbHealthChecker ports.DatabaseHealthChecker
	}
)

func NewFetchHealthQueryHandler(
	dbHealthChecker ports.DatabaseHealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchHealthQueryHandler {
	return decorator.ApplyQueryDecorators[FetchHealthQuery, *HealthResult](
		fetchHealthQueryHandler{dbHealthChecker: dbHealthChecker},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchHealthQueryHandler) Execute(ctx context.Context, _ FetchHealthQuery) (*HealthResult, error) {
	if err := h.dbHealthChecker.Ping(ctx); err != nil {
		return nil, err
	}

	return &HealthResult{
		Status:    healthStatusOK,
		Timestamp: time.Now().UTC(),
	}, nil
}
