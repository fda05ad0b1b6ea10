package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadya284/mood-enhancer/internal/config"
	"github.com/aadya284/mood-enhancer/internal/domain"
	"github.com/aadya284/mood-enhancer/internal/service"
)

// newTestServer wires the full handler stack with no API credentials, i.e.
// permanently degraded mode: fallback catalog and static image pool.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	openAI := service.NewOpenAIService("")
	images := service.NewImageService("", service.NewUsedImagesCache())

	h := New(Deps{
		Cfg:             &config.Config{},
		Recommendations: service.NewRecommendationService(openAI, images),
		News:            service.NewNewsService(),
	})

	ts := httptest.NewServer(h.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postRecommendations(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/recommendations", "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	return resp
}

func TestRecommendations_MissingMood(t *testing.T) {
	ts := newTestServer(t)

	resp := postRecommendations(t, ts, `{"day":"Good","energy":"High"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Contains(t, e.Error, "Mood assessment data is required")
}

func TestRecommendations_UndecodableBody(t *testing.T) {
	ts := newTestServer(t)

	resp := postRecommendations(t, ts, `{"mood":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecommendations_DegradedModeServesCatalog(t *testing.T) {
	ts := newTestServer(t)

	resp := postRecommendations(t, ts, `{"mood":"happy","day":"Good","energy":"High","story":"","preferences":"music","activity":"Listen to music"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode, "missing credentials must degrade, not error")

	var rec domain.RecommendationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))

	assert.Equal(t, "happy", rec.Mood)

	for _, category := range domain.Categories {
		items := rec.Categories.Get(category)
		require.NotEmpty(t, items, "category %s must be populated", category)

		ids := make(map[string]struct{})
		for _, item := range items {
			assert.NotEmpty(t, item.ImageURL)
			_, dup := ids[item.ID]
			assert.False(t, dup, "duplicate id %q in %s", item.ID, category)
			ids[item.ID] = struct{}{}
		}
	}

	assert.Contains(t, rec.Categories.Music[0].ImageURL, "images.unsplash.com",
		"without an Unsplash key the image must come from the static table")
}

func TestRecommendations_ResponseHasAllCategoryKeys(t *testing.T) {
	ts := newTestServer(t)

	resp := postRecommendations(t, ts, `{"mood":"tired"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw struct {
		Mood       string                     `json:"mood"`
		Categories map[string]json.RawMessage `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))

	assert.Equal(t, "tired", raw.Mood)
	require.Len(t, raw.Categories, len(domain.Categories))
	for _, category := range domain.Categories {
		assert.Contains(t, raw.Categories, category)
	}
}
