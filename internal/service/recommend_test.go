package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadya284/mood-enhancer/internal/domain"
)

// fakeLLM wires a RecommendationService to a chat endpoint that always
// returns the given content string, with image lookup in static mode.
func fakeLLM(t *testing.T, content string) (*RecommendationService, func()) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionBody(content)))
	}))

	ai := NewOpenAIService("test-key")
	ai.baseURL = ts.URL
	images := NewImageService("", NewUsedImagesCache())
	return NewRecommendationService(ai, images), ts.Close
}

func TestGenerate_NormalizesItems(t *testing.T) {
	content := string(mustMarshal(map[string][]rawItem{
		"movies": {
			{Title: "Chef", Description: "A cook rebuilds his life", Genre: "Comedy", Duration: "1h 54m", Rating: 4.4, Reason: "Light and warm", SearchQuery: "Chef 2014 movie poster"},
			{Title: "Soul", Description: "A musician finds meaning", Genre: "Animation", Duration: "1h 40m", Rating: 4.7, Reason: "Gentle and hopeful", SearchQuery: "Soul Pixar poster"},
		},
		"music":      {{Title: "In Rainbows", Genre: "Alternative", Rating: 4.9, Reason: "Mellow energy", SearchQuery: "Radiohead In Rainbows album cover"}},
		"podcasts":   {{Title: "On Being", Genre: "Society", Rating: 4.5, Reason: "Reflective", SearchQuery: "On Being podcast cover"}},
		"audiobooks": {{Title: "Atomic Habits", Genre: "Self-Help", Rating: 4.6, Reason: "Actionable", SearchQuery: "Atomic Habits book cover"}},
		"games":      {},
	}))

	svc, done := fakeLLM(t, content)
	defer done()

	resp, err := svc.Generate(context.Background(), domain.MoodAssessment{Mood: "content"})
	require.NoError(t, err)
	assert.Equal(t, "content", resp.Mood)

	movies := resp.Categories.Movies
	require.Len(t, movies, 2)
	assert.Equal(t, "movies_1", movies[0].ID)
	assert.Equal(t, "movies_2", movies[1].ID)
	assert.Equal(t, "Chef", movies[0].Title, "item order must follow the model output")
	assert.Equal(t, "Soul", movies[1].Title)
	assert.Equal(t, "https://www.google.com/search?q=Chef+Comedy", movies[0].ExternalURL)

	for _, category := range domain.Categories {
		for _, item := range resp.Categories.Get(category) {
			assert.NotEmpty(t, item.ImageURL, "category %s item %s", category, item.ID)
			assert.NotEmpty(t, item.ExternalURL)
		}
	}

	// An empty category stays present and empty rather than disappearing.
	assert.NotNil(t, resp.Categories.Games)
	assert.Empty(t, resp.Categories.Games)
}

func TestGenerate_FallsBackToTitleQuery(t *testing.T) {
	content := string(mustMarshal(map[string][]rawItem{
		"music": {{Title: "movie soundtracks mix", Genre: "Score", Rating: 4.2, Reason: "Cinematic"}},
	}))

	svc, done := fakeLLM(t, content)
	defer done()

	resp, err := svc.Generate(context.Background(), domain.MoodAssessment{Mood: "nostalgic"})
	require.NoError(t, err)
	require.Len(t, resp.Categories.Music, 1)
	// With no searchQuery the title is used, which hits the keyword table.
	assert.Contains(t, resp.Categories.Music[0].ImageURL, "images.unsplash.com")
}

func TestGenerate_MalformedOutput(t *testing.T) {
	svc, done := fakeLLM(t, "Sure! Here are your recommendations: {\"movies\": [")
	defer done()

	_, err := svc.Generate(context.Background(), domain.MoodAssessment{Mood: "happy"})
	require.ErrorIs(t, err, domain.ErrMalformedOutput)
}

func TestGenerate_NoAPIKey(t *testing.T) {
	ai := NewOpenAIService("")
	svc := NewRecommendationService(ai, NewImageService("", NewUsedImagesCache()))

	_, err := svc.Generate(context.Background(), domain.MoodAssessment{Mood: "happy"})
	require.ErrorIs(t, err, domain.ErrNoAPIKey)
}

func TestFallback_FullyFormed(t *testing.T) {
	svc := NewRecommendationService(NewOpenAIService(""), NewImageService("", NewUsedImagesCache()))

	resp := svc.Fallback(context.Background(), "happy")
	assert.Equal(t, "happy", resp.Mood)

	for _, category := range domain.Categories {
		items := resp.Categories.Get(category)
		require.NotEmpty(t, items, "category %s must have fallback content", category)

		ids := make(map[string]struct{})
		for i, item := range items {
			assert.NotEmpty(t, item.Title)
			assert.NotEmpty(t, item.ImageURL)
			assert.NotEmpty(t, item.ExternalURL)
			assert.Positive(t, item.Rating)

			_, dup := ids[item.ID]
			assert.False(t, dup, "duplicate id %q in %s", item.ID, category)
			ids[item.ID] = struct{}{}
			assert.Equal(t, category, item.ID[:len(category)], "id %d should be prefixed by category", i)
		}
	}
}
