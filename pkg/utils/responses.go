package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field validation messages.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// returns 400 Bad Request with per-field messages
func ResponseValidationErrors(w http.ResponseWriter, errors map[string]string) {
	WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errors})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusConflict, ErrorResponse{Error: message})
}

// returns 415 Unsupported Media Type
func ResponseUnsupportedMediaType(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnsupportedMediaType, ErrorResponse{
		Error: "Invalid content type. Expected application/json",
	})
}

// returns 500 Internal Server Error with a generic message, detail stays in logs
func ResponseInternalError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
