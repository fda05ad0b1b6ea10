package service

import (
	"context"

	"github.com/aadya284/mood-enhancer/internal/domain"
)

// fallbackCatalog is served whenever live generation fails. Items are real,
// broadly mood-safe picks; images still resolve through the Image Resolver
// so the payload is indistinguishable from a live one.
var fallbackCatalog = map[string][]rawItem{
	domain.CategoryMovies: {
		{
			Title:       "The Pursuit of Happyness",
			Description: "An inspiring story of perseverance",
			Genre:       "Drama",
			Duration:    "1h 57m",
			Rating:      4.8,
			Reason:      "Uplifting story to match your mood",
			SearchQuery: "The Pursuit of Happyness movie poster",
		},
		{
			Title:       "Paddington 2",
			Description: "A gentle comedy about kindness",
			Genre:       "Family",
			Duration:    "1h 43m",
			Rating:      4.7,
			Reason:      "Warm and comforting watch",
			SearchQuery: "Paddington 2 movie poster",
		},
	},
	domain.CategoryMusic: {
		{
			Title:       "Feel Good Playlist",
			Description: "Upbeat songs to boost your energy",
			Genre:       "Pop",
			Duration:    "2h 30m",
			Rating:      4.9,
			Reason:      "Perfect for your current mood",
			SearchQuery: "music headphones",
		},
		{
			Title:       "Weightless",
			Description: "Ambient track composed to lower stress",
			Genre:       "Ambient",
			Duration:    "8:09",
			Rating:      4.6,
			Reason:      "Calms a racing mind",
			SearchQuery: "Marconi Union Weightless album cover",
		},
	},
	domain.CategoryPodcasts: {
		{
			Title:       "The Happiness Lab",
			Description: "Science-backed ways to feel happier",
			Genre:       "Self-Help",
			Duration:    "45m",
			Rating:      4.8,
			Reason:      "Enhance your positive mindset",
			SearchQuery: "podcast microphone",
		},
	},
	domain.CategoryAudiobooks: {
		{
			Title:       "The Power of Positive Thinking",
			Description: "Classic self-help audiobook",
			Genre:       "Self-Help",
			Duration:    "8h 30m",
			Rating:      4.6,
			Reason:      "Reinforce your positive outlook",
			SearchQuery: "audiobook headphones",
		},
	},
	domain.CategoryGames: {
		{
			Title:       "Stardew Valley",
			Description: "Peaceful farming simulation",
			Genre:       "Simulation",
			Rating:      4.9,
			Reason:      "Relaxing and rewarding",
			SearchQuery: "peaceful game",
		},
		{
			Title:       "A Short Hike",
			Description: "Cozy exploration up a mountain trail",
			Genre:       "Adventure",
			Rating:      4.8,
			Reason:      "Low-stakes and soothing",
			SearchQuery: "A Short Hike game screenshot",
		},
	},
}

// Fallback assembles the static catalog for the given mood. It cannot fail;
// the resolver guarantees an image for every item.
func (s *RecommendationService) Fallback(ctx context.Context, mood string) *domain.RecommendationResponse {
	resp := &domain.RecommendationResponse{Mood: mood}
	for _, category := range domain.Categories {
		raws := fallbackCatalog[category]
		items := make([]domain.RecommendationItem, len(raws))
		for i, raw := range raws {
			items[i] = s.normalize(ctx, category, i, raw)
		}
		resp.Categories.Set(category, items)
	}
	return resp
}
