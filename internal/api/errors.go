package api

import (
	"encoding/json"
	"net/http"

	"mmscan/internal/errors"
)

// ErrorResponse represents an HTTP error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// WriteError writes an error response to the HTTP response writer
func WriteError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := ErrorResponse{
		Error: err.Error(),
	}

	if scanErr, ok := err.(*errors.ScanError); ok {
		resp.Code = string(scanErr.Code)
		resp.Details = scanErr.Details
	} else {
		resp.Code = string(errors.InternalError)
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// MapErrorToStatus maps mmscan error codes to HTTP status codes
func MapErrorToStatus(code errors.ErrorCode) int {
	switch code {
	case errors.RequestInvalid:
		return http.StatusBadRequest // 400
	case errors.Unauthorized:
		return http.StatusUnauthorized // 401
	case errors.UnitTooLarge:
		return http.StatusRequestEntityTooLarge // 413
	case errors.RulesInvalid:
		return http.StatusUnprocessableEntity // 422
	case errors.InternalError:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// BadRequest writes a 400 Bad Request error
func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, errors.New(errors.RequestInvalid, message, nil), http.StatusBadRequest)
}

// Unauthorized writes a 401 Unauthorized error
func Unauthorized(w http.ResponseWriter, message string) {
	WriteError(w, errors.New(errors.Unauthorized, message, nil), http.StatusUnauthorized)
}

// InternalError writes a 500 Internal Server Error
func InternalError(w http.ResponseWriter, message string, err error) {
	WriteError(w, errors.New(errors.InternalError, message, err), http.StatusInternalServerError)
}
