package handler

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
)

// errorResponse is the JSON envelope for 4xx/5xx replies.
type errorResponse struct {
	Error string `json:"error"`
}

type pingResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
