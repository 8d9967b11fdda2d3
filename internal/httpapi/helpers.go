package httpapi

import (
	"encoding/json"
	"net/http"
)

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, statusCode int, reason string) {
	writeJSON(w, statusCode, apiResponse{
		Success: false,
		Error:   &reason,
	})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethod string) {
	w.Header().Set("Allow", allowedMethod)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
