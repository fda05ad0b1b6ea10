package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/aadya284/mood-enhancer/internal/domain"
	"github.com/aadya284/mood-enhancer/internal/middleware"
)

// HandleRecommendations runs a mood assessment through the generation
// pipeline. Generation failures degrade silently to the static catalog; the
// client only ever sees a 400 for its own malformed payload.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	var assessment domain.MoodAssessment
	if err := json.NewDecoder(r.Body).Decode(&assessment); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request. Mood assessment data is required."})
		return
	}

	if err := h.validate.Struct(assessment); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request. Mood assessment data is required."})
		return
	}

	resp, err := h.recommendations.Generate(r.Context(), assessment)
	if err != nil {
		// Missing credential is an expected configuration state; anything
		// else is a real incident. Both degrade to the same catalog.
		if errors.Is(err, domain.ErrNoAPIKey) {
			slog.Warn("serving fallback recommendations",
				"reason", "no api key configured",
				"request_id", middleware.GetRequestID(r.Context()),
			)
		} else {
			slog.Error("recommendation generation failed",
				"error", err,
				"request_id", middleware.GetRequestID(r.Context()),
			)
		}
		resp = h.recommendations.Fallback(r.Context(), assessment.Mood)
	}

	writeJSON(w, http.StatusOK, resp)
}
