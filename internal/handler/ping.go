package handler

import "net/http"

// HandlePing is the liveness check used by the client shell.
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pingResponse{Message: "pong"})
}
