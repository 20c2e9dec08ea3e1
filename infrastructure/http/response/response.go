package response

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body shape for plain status messages, matching
// what the admin console expects.
type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	Message(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Message(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Message(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Message(w, http.StatusInternalServerError, message)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	Message(w, http.StatusTooManyRequests, message)
}
