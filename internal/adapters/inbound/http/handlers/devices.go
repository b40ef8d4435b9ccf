package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/architeacher/device-inventory/internal/domain/model"
	"github.com/architeacher/device-inventory/internal/usecases"
	"github.com/architeacher/device-inventory/internal/usecases/commands"
	"github.com/architeacher/device-inventory/internal/usecases/queries"
	"github.com/architeacher/device-inventory/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const urlParamName = "name"

type (
	createDeviceRequest struct {
		Name      string `json:"name"`
		IPAddress string `json:"ip_address"`
		Type      string `json:"type"`
		Location  string `json:"location"`
	}

	// updateDeviceRequest carries no name; the path parameter is authoritative
	// and a name in the body is discarded.
	updateDeviceRequest struct {
		IPAddress string `json:"ip_address"`
		Type      string `json:"type"`
		Location  string `json:"location"`
	}

	deviceData struct {
		Name      string `json:"name"`
		IPAddress string `json:"ip_address"`
		Type      string `json:"type"`
		Location  string `json:"location"`
	}

	DeviceHandler struct {
		app *usecases.Application
		log logger.Logger
	}
)

func NewDeviceHandler(app *usecases.Application, log logger.Logger) *DeviceHandler {
	return &DeviceHandler{
		app: app,
		log: log,
	}
}

func toDeviceData(device *model.Device) deviceData {
	return deviceData{
		Name:      device.Name,
		IPAddress: device.IPAddress,
		Type:      string(device.Type),
		Location:  device.Location,
	}
}

func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	devices, err := h.app.Queries.ListDevices.Execute(r.Context(), queries.ListDevicesQuery{})
	if err != nil {
		writeMappedError(w, err)

		return
	}

	// An empty inventory serializes as [] rather than null.
	data := make([]deviceData, 0, len(devices))
	for _, device := range devices {
		data = append(data, toDeviceData(device))
	}

	writeJSONResponse(w, http.StatusOK, data)
}

func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return
	}

	input := model.DeviceInput{
		Name:      req.Name,
		IPAddress: req.IPAddress,
		Type:      req.Type,
		Location:  req.Location,
	}
	if errs := model.ValidateCreate(input); errs.HasErrors() {
		writeErrorResponse(w, http.StatusBadRequest, codeValidationError, errs.Error())

		return
	}

	device, err := h.app.Commands.CreateDevice.Handle(r.Context(), commands.CreateDeviceCommand{
		Name:      req.Name,
		IPAddress: req.IPAddress,
		Type:      model.DeviceType(req.Type),
		Location:  req.Location,
	})
	if err != nil {
		writeMappedError(w, err)

		return
	}

	writeJSONResponse(w, http.StatusCreated, toDeviceData(device))
}

func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, urlParamName)

	device, err := h.app.Queries.GetDevice.Execute(r.Context(), queries.GetDeviceQuery{Name: name})
	if err != nil {
		writeMappedError(w, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceData(device))
}

func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, urlParamName)

	var req updateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return
	}

	input := model.DeviceInput{
		IPAddress: req.IPAddress,
		Type:      req.Type,
		Location:  req.Location,
	}
	if errs := model.ValidateUpdate(input); errs.HasErrors() {
		writeErrorResponse(w, http.StatusBadRequest, codeValidationError, errs.Error())

		return
	}

	device, err := h.app.Commands.UpdateDevice.Handle(r.Context(), commands.UpdateDeviceCommand{
		Name:      name,
		IPAddress: req.IPAddress,
		Type:      model.DeviceType(req.Type),
		Location:  req.Location,
	})
	if err != nil {
		writeMappedError(w, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceData(device))
}

func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, urlParamName)

	if _, err := h.app.Commands.DeleteDevice.Handle(r.Context(), commands.DeleteDeviceCommand{Name: name}); err != nil {
		writeMappedError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
