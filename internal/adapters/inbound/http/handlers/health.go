package handlers

import (
	"fmt"
	"net/http"

	"github.com/architeacher/device-inventory/internal/usecases"
	"github.com/architeacher/device-inventory/internal/usecases/queries"
	"github.com/architeacher/device-inventory/pkg/logger"
)

type HealthHandler struct {
	app *usecases.Application
	log logger.Logger
}

func NewHealthHandler(app *usecases.Application, log logger.Logger) *HealthHandler {
	return &HealthHandler{
		app: app,
		log: log,
	}
}

// Check reports liveness of the service and its storage. A failed storage
// probe yields 503 so load balancers rotate the instance out.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchHealth.Execute(r.Context(), queries.FetchHealthQuery{})
	if err != nil {
		log := h.log.WithContext(r.Context())
		log.Error().Err(err).Msg("health probe failed")
		writeErrorResponse(w, http.StatusServiceUnavailable, codeServiceUnavailable,
			fmt.Sprintf("Database connectivity error: %v", err))

		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}
