package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/architeacher/device-inventory/internal/domain/model"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	codeValidationError    = "VALIDATION_ERROR"
	codeInvalidJSON        = "INVALID_JSON"
	codeNotFound           = "NOT_FOUND"
	codeConflict           = "CONFLICT"
	codeInternalError      = "INTERNAL_ERROR"
	codeServiceUnavailable = "SERVICE_UNAVAILABLE"

	msgDeviceNotFound     = "Device not found"
	msgDuplicateDevice    = "Device name already exists"
	msgInvalidRequestBody = "invalid request body"
)

type (
	errorDetail struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	// errorEnvelope is the uniform shape of every non-2xx response body.
	errorEnvelope struct {
		Error errorDetail `json:"error"`
	}
)

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSONResponse(w, status, errorEnvelope{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// writeMappedError converts domain outcomes into status codes: not-found
// 404, duplicate 409, anything else (storage faults included) 500 with the
// error's description.
func writeMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrDeviceNotFound):
		writeErrorResponse(w, http.StatusNotFound, codeNotFound, msgDeviceNotFound)
	case errors.Is(err, model.ErrDuplicateDevice):
		writeErrorResponse(w, http.StatusConflict, codeConflict, msgDuplicateDevice)
	default:
		writeErrorResponse(w, http.StatusInternalServerError, codeInternalError, err.Error())
	}
}
