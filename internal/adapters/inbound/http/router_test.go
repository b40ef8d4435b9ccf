package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	inboundhttp "github.com/architeacher/device-inventory/internal/adapters/inbound/http"
	"github.com/architeacher/device-inventory/internal/config"
	"github.com/architeacher/device-inventory/internal/domain/model"
	"github.com/architeacher/device-inventory/internal/mocks"
	"github.com/architeacher/device-inventory/internal/services"
	"github.com/architeacher/device-inventory/internal/usecases"
	"github.com/architeacher/device-inventory/pkg/logger"
	"github.com/architeacher/device-inventory/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type deviceBody struct {
	Name      string `json:"name"`
	IPAddress string `json:"ip_address"`
	Type      string `json:"type"`
	Location  string `json:"location"`
}

// memoryRepository backs the service with a plain map so router tests cover
// the full stack below the transport without a running document store.
type memoryRepository struct {
	devices map[string]*model.Device
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{devices: make(map[string]*model.Device)}
}

func (r *memoryRepository) Create(_ context.Context, device *model.Device) error {
	if _, ok := r.devices[device.Name]; ok {
		return model.ErrDuplicateDevice
	}

	clone := *device
	r.devices[device.Name] = &clone

	return nil
}

func (r *memoryRepository) GetByName(_ context.Context, name string) (*model.Device, error) {
	device, ok := r.devices[name]
	if !ok {
		return nil, model.ErrDeviceNotFound
	}

	clone := *device

	return &clone, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*model.Device, error) {
	devices := make([]*model.Device, 0, len(r.devices))
	for _, device := range r.devices {
		clone := *device
		devices = append(devices, &clone)
	}

	return devices, nil
}

func (r *memoryRepository) Update(_ context.Context, device *model.Device) error {
	if _, ok := r.devices[device.Name]; !ok {
		return model.ErrDeviceNotFound
	}

	clone := *device
	r.devices[device.Name] = &clone

	return nil
}

func (r *memoryRepository) Delete(_ context.Context, name string) error {
	if _, ok := r.devices[name]; !ok {
		return model.ErrDeviceNotFound
	}

	delete(r.devices, name)

	return nil
}

func testConfig() *config.ServiceConfig {
	return &config.ServiceConfig{
		HTTPServer: config.HTTPServerConfig{
			WriteTimeout: 15 * time.Second,
		},
	}
}

func newTestRouter(t *testing.T, healthChecker *mocks.FakeHealthChecker) http.Handler {
	t.Helper()

	if healthChecker == nil {
		healthChecker = &mocks.FakeHealthChecker{}
	}

	svc := services.NewDevicesService(newMemoryRepository())
	app := usecases.NewApplication(
		svc,
		healthChecker,
		logger.NewTestLogger(),
		otelNoop.NewTracerProvider(),
		noop.NewMetricsClient(),
	)

	return inboundhttp.NewRouter(testConfig(), app, logger.NewTestLogger())
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestDeviceLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	createPayload := `{"name":"edge-rtr-01","ip_address":"10.0.0.1","type":"Router","location":"fra-dc1"}`

	// Create echoes the stored representation.
	resp := doJSON(t, router, http.MethodPost, "/devices", createPayload)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created deviceBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.Equal(t, "edge-rtr-01", created.Name)
	require.Equal(t, "10.0.0.1", created.IPAddress)
	require.Equal(t, "Router", created.Type)
	require.Equal(t, "fra-dc1", created.Location)

	// A second create with the same name conflicts.
	resp = doJSON(t, router, http.MethodPost, "/devices", createPayload)
	require.Equal(t, http.StatusConflict, resp.Code)

	conflict := decodeError(t, resp)
	require.Equal(t, "CONFLICT", conflict.Error.Code)
	require.Equal(t, "Device name already exists", conflict.Error.Message)

	// The device is readable.
	resp = doJSON(t, router, http.MethodGet, "/devices/edge-rtr-01", "")
	require.Equal(t, http.StatusOK, resp.Code)

	// Update replaces the fields; a name in the body is ignored.
	resp = doJSON(t, router, http.MethodPut, "/devices/edge-rtr-01",
		`{"name":"renamed","ip_address":"10.0.0.2","type":"Switch","location":"ams-dc2"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var updated deviceBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	require.Equal(t, "edge-rtr-01", updated.Name)
	require.Equal(t, "10.0.0.2", updated.IPAddress)
	require.Equal(t, "Switch", updated.Type)
	require.Equal(t, "ams-dc2", updated.Location)

	// Delete answers with no content.
	resp = doJSON(t, router, http.MethodDelete, "/devices/edge-rtr-01", "")
	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Empty(t, resp.Body.Bytes())

	// The device is gone afterwards.
	resp = doJSON(t, router, http.MethodGet, "/devices/edge-rtr-01", "")
	require.Equal(t, http.StatusNotFound, resp.Code)

	notFound := decodeError(t, resp)
	require.Equal(t, "NOT_FOUND", notFound.Error.Code)
	require.Equal(t, "Device not found", notFound.Error.Message)
}

func TestCreateDeviceValidation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	t.Run("empty body reports every missing field", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodPost, "/devices", `{}`)
		require.Equal(t, http.StatusBadRequest, resp.Code)

		body := decodeError(t, resp)
		require.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		require.Equal(t,
			"Missing required field: name; Missing required field: ip_address; "+
				"Missing required field: type; Missing required field: location",
			body.Error.Message,
		)
	})

	t.Run("invalid type and address accumulate", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodPost, "/devices",
			`{"name":"x","ip_address":"999.1.1.1","type":"Firewall","location":"fra-dc1"}`)
		require.Equal(t, http.StatusBadRequest, resp.Code)

		body := decodeError(t, resp)
		require.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		require.Equal(t,
			"Field 'type' must be one of: Router, Switch, Server; "+
				"Field 'ip_address' must be a valid IPv4 address",
			body.Error.Message,
		)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodPost, "/devices", `{"name":`)
		require.Equal(t, http.StatusBadRequest, resp.Code)

		body := decodeError(t, resp)
		require.Equal(t, "INVALID_JSON", body.Error.Code)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodPost, "/devices",
			`{"name":"core-sw-09","ip_address":"10.0.9.1","type":"Switch","location":"fra-dc1","rack":"A4"}`)
		require.Equal(t, http.StatusCreated, resp.Code)
	})
}

func TestUpdateDeviceValidation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	resp := doJSON(t, router, http.MethodPut, "/devices/edge-rtr-01", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	body := decodeError(t, resp)
	require.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	require.Equal(t,
		"Missing required field: ip_address; Missing required field: type; Missing required field: location",
		body.Error.Message,
	)
}

func TestListDevices(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	t.Run("empty inventory serializes as an empty array", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodGet, "/devices", "")
		require.Equal(t, http.StatusOK, resp.Code)
		require.JSONEq(t, `[]`, resp.Body.String())
	})

	t.Run("lists created devices", func(t *testing.T) {
		create := doJSON(t, router, http.MethodPost, "/devices",
			`{"name":"db-srv-01","ip_address":"10.0.0.9","type":"Server","location":"ams-dc2"}`)
		require.Equal(t, http.StatusCreated, create.Code)

		resp := doJSON(t, router, http.MethodGet, "/devices", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var devices []deviceBody
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &devices))
		require.Len(t, devices, 1)
		require.Equal(t, "db-srv-01", devices[0].Name)
	})
}

func TestDeleteUnknownDevice(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	resp := doJSON(t, router, http.MethodDelete, "/devices/ghost", "")
	require.Equal(t, http.StatusNotFound, resp.Code)

	body := decodeError(t, resp)
	require.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("reports ok", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t, nil)

		resp := doJSON(t, router, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, "ok", body["status"])
	})

	t.Run("storage outage yields service unavailable", func(t *testing.T) {
		t.Parallel()

		checker := &mocks.FakeHealthChecker{
			PingStub: func(_ context.Context) error {
				return errors.New("server selection timeout")
			},
		}
		router := newTestRouter(t, checker)

		resp := doJSON(t, router, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusServiceUnavailable, resp.Code)

		body := decodeError(t, resp)
		require.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
		require.Contains(t, body.Error.Message, "Database connectivity error")
	})
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	resp := doJSON(t, router, http.MethodGet, "/devices", "")

	require.NotEmpty(t, resp.Header().Get("X-Request-Id"))
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	resp := doJSON(t, router, http.MethodGet, "/devices", "")

	require.Equal(t, "nosniff", resp.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", resp.Header().Get("X-Frame-Options"))
}
