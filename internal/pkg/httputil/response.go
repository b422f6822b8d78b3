package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/pkg/logger"
)

// ErrorResponse is the error envelope for all API failures. Code carries the
// machine-readable failure kind (e.g. INVALID_EMAIL) when one applies.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// InternalErrorMessage is the only text a 5xx response ever carries.
const InternalErrorMessage = "Internal server error"

// JSON writes a JSON response with the given status code. The body is
// marshalled before the header goes out, so a value that cannot be encoded
// becomes a 500 instead of an empty response.
func JSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error("httputil: JSON encode failed", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: InternalErrorMessage, Code: "INTERNAL"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// OK writes a 200 response with the given data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Error writes a JSON error response. Use for client errors (4xx).
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorResponse{Error: message, Code: code})
}

// BadRequest writes a 400 error.
func BadRequest(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusBadRequest, code, message)
}

// Conflict writes a 409 error.
func Conflict(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusConflict, code, message)
}

// InternalError writes a 500 error. The real error is logged; the client
// only ever sees InternalErrorMessage.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	Error(w, http.StatusInternalServerError, "INTERNAL", InternalErrorMessage)
}
