package handler

import (
	"net/http"

	"github.com/aadya284/mood-enhancer/internal/domain"
)

// HandleMentalUpdates returns aggregated mental-health headlines. Feed
// failures surface as an empty list, never as an error.
func (h *Handler) HandleMentalUpdates(w http.ResponseWriter, r *http.Request) {
	items := h.news.MentalUpdates(r.Context())
	if items == nil {
		items = []domain.MentalUpdate{}
	}
	writeJSON(w, http.StatusOK, domain.MentalUpdatesResponse{Items: items})
}

// HandleDailyQuote returns the quote of the day.
func (h *Handler) HandleDailyQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.news.DailyQuote(r.Context()))
}
