package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/aadya284/mood-enhancer/internal/domain"
)

type RecommendationService struct {
	ai     *OpenAIService
	images *ImageService
}

func NewRecommendationService(ai *OpenAIService, images *ImageService) *RecommendationService {
	return &RecommendationService{
		ai:     ai,
		images: images,
	}
}

// rawItem is the per-item shape the model is asked to produce. Fields the
// model omits stay at their zero value and pass through to the response.
type rawItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Reason      string  `json:"reason"`
	SearchQuery string  `json:"searchQuery"`
}

// Generate runs the full pipeline: prompt, chat completion, strict JSON
// parse, then normalization with per-item image fan-out. Any error means the
// caller should serve the fallback catalog instead.
func (s *RecommendationService) Generate(ctx context.Context, a domain.MoodAssessment) (*domain.RecommendationResponse, error) {
	prompt := BuildPrompt(a)

	content, err := s.ai.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var parsed map[string][]rawItem
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedOutput, err)
	}

	resp := &domain.RecommendationResponse{Mood: a.Mood}

	// Image lookups dominate latency, so every item resolves concurrently.
	// Slots are preallocated per category to keep the model's item order.
	var wg sync.WaitGroup
	for _, category := range domain.Categories {
		raws := parsed[category]
		items := make([]domain.RecommendationItem, len(raws))
		for i, raw := range raws {
			wg.Add(1)
			go func(category string, i int, raw rawItem) {
				defer wg.Done()
				items[i] = s.normalize(ctx, category, i, raw)
			}(category, i, raw)
		}
		resp.Categories.Set(category, items)
	}
	wg.Wait()

	return resp, nil
}

func (s *RecommendationService) normalize(ctx context.Context, category string, index int, raw rawItem) domain.RecommendationItem {
	query := raw.SearchQuery
	if query == "" {
		query = raw.Title
	}

	return domain.RecommendationItem{
		ID:          fmt.Sprintf("%s_%d", category, index+1),
		Title:       raw.Title,
		Description: raw.Description,
		Genre:       raw.Genre,
		Duration:    raw.Duration,
		Rating:      raw.Rating,
		Reason:      raw.Reason,
		ImageURL:    s.images.Resolve(ctx, query),
		ExternalURL: searchLink(raw.Title, raw.Genre),
	}
}

func searchLink(title, genre string) string {
	q := strings.TrimSpace(title + " " + genre)
	return "https://www.google.com/search?q=" + url.QueryEscape(q)
}
