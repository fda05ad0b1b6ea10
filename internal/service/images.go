package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/aadya284/mood-enhancer/internal/config"
	"github.com/aadya284/mood-enhancer/internal/domain"
)

type ImageService struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
	used       *UsedImagesCache
}

func NewImageService(accessKey string, used *UsedImagesCache) *ImageService {
	return &ImageService{
		accessKey:  accessKey,
		baseURL:    "https://api.unsplash.com",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		used:       used,
	}
}

// keywordImages maps content keywords to curated stock photos. Rows are
// checked in order with a case-insensitive substring match against the
// search query; the first hit wins.
var keywordImages = []struct {
	keyword string
	url     string
}{
	{"stardew", "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=400&h=600&fit=crop"},
	{"movie", "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=400&h=600&fit=crop"},
	{"film", "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=400&h=600&fit=crop"},
	{"cinema", "https://images.unsplash.com/photo-1517604931442-7e0c8ed2963c?w=400&h=600&fit=crop"},
	{"album", "https://images.unsplash.com/photo-1483412033650-1015ddeb83d1?w=400&h=600&fit=crop"},
	{"music", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=600&fit=crop"},
	{"song", "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=400&h=600&fit=crop"},
	{"playlist", "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=600&fit=crop"},
	{"podcast", "https://images.unsplash.com/photo-1478737270239-2f02b77fc618?w=400&h=600&fit=crop"},
	{"microphone", "https://images.unsplash.com/photo-1590602847861-f357a9332bbc?w=400&h=600&fit=crop"},
	{"audiobook", "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=600&fit=crop"},
	{"book", "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400&h=600&fit=crop"},
	{"game", "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=400&h=600&fit=crop"},
	{"gaming", "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=400&h=600&fit=crop"},
}

// stockPool is cycled through when neither the live search nor the keyword
// table produced a photo.
var stockPool = []string{
	"https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1519681393784-d120267933ba?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1470770841072-f978cf4d019e?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1472214103451-9374bd1c798e?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1447752875215-b2761acb3c5d?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1433086966358-54859d0ed716?w=400&h=600&fit=crop",
	"https://images.unsplash.com/photo-1475924156734-496f6cac6ec1?w=400&h=600&fit=crop",
}

// Resolve returns a photo URL for a free-text query. It never fails: a live
// search error falls back to the keyword table, then to the stock pool, and
// once the pool is exhausted the used set is cleared and a random pool entry
// is reissued.
func (s *ImageService) Resolve(ctx context.Context, query string) string {
	if s.accessKey != "" {
		photo, err := s.search(ctx, query)
		if err == nil {
			s.used.Add(photo)
			return photo
		}
		slog.Debug("image search failed", "query", query, "error", err)
	}

	lower := strings.ToLower(query)
	for _, kw := range keywordImages {
		if strings.Contains(lower, kw.keyword) {
			return kw.url
		}
	}

	for _, photo := range stockPool {
		if !s.used.Has(photo) {
			s.used.Add(photo)
			return photo
		}
	}

	// Whole pool issued once; start over with a random pick.
	s.used.Clear()
	photo := stockPool[rand.Intn(len(stockPool))]
	s.used.Add(photo)
	return photo
}

func (s *ImageService) search(ctx context.Context, query string) (string, error) {
	searchURL := fmt.Sprintf("%s/search/photos?query=%s&per_page=1&orientation=portrait&client_id=%s",
		s.baseURL, url.QueryEscape(query), s.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search photos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search photos status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var result struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(result.Results) == 0 || result.Results[0].URLs.Regular == "" {
		return "", domain.ErrNoImageResults
	}

	return result.Results[0].URLs.Regular, nil
}
