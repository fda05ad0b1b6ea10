package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/aadya284/mood-enhancer/internal/config"
	"github.com/aadya284/mood-enhancer/internal/middleware"
	"github.com/aadya284/mood-enhancer/internal/service"
)

// Handler holds all dependencies needed by HTTP route handlers.
type Handler struct {
	cfg             *config.Config
	recommendations *service.RecommendationService
	news            *service.NewsService
	validate        *validator.Validate
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg             *config.Config
	Recommendations *service.RecommendationService
	News            *service.NewsService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:             deps.Cfg,
		recommendations: deps.Recommendations,
		news:            deps.News,
		validate:        validator.New(),
	}
}

// Routes assembles the API router with its middleware stack.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recover())
	r.Use(middleware.Logging())

	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(config.RateLimitRequests, config.RateLimitWindow))

		r.Get("/ping", h.HandlePing)
		r.Post("/recommendations", h.HandleRecommendations)
		r.Get("/mental-updates", h.HandleMentalUpdates)
		r.Get("/quote", h.HandleDailyQuote)
	})

	return r
}
