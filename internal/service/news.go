package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-json"
	"golang.org/x/net/html"

	"github.com/aadya284/mood-enhancer/internal/config"
	"github.com/aadya284/mood-enhancer/internal/domain"
)

type NewsService struct {
	httpClient *http.Client
	feeds      []string
	quoteURL   string
}

func NewNewsService() *NewsService {
	return &NewsService{
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		feeds:      config.NewsFeeds,
		quoteURL:   "https://zenquotes.io",
	}
}

// localQuotes backs the daily quote when the upstream is unreachable. The
// pick is keyed to the UTC day so every visitor sees the same quote.
var localQuotes = []domain.Quote{
	{Quote: "Keep going. Everything you need will come to you at the perfect time.", Author: "Unknown"},
	{Quote: "You are stronger than you think.", Author: "Unknown"},
	{Quote: "Small steps every day.", Author: "Unknown"},
	{Quote: "This too shall pass.", Author: "Persian Proverb"},
	{Quote: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
	{Quote: "One day at a time.", Author: "Unknown"},
	{Quote: "Be kind to your mind.", Author: "Unknown"},
}

// MentalUpdates aggregates the configured news feeds, dropping duplicate
// headlines and capping the result. A feed that fails to load is skipped;
// the method itself never fails.
func (s *NewsService) MentalUpdates(ctx context.Context) []domain.MentalUpdate {
	var all []domain.MentalUpdate
	for _, feed := range s.feeds {
		items, err := s.fetchFeed(ctx, feed)
		if err != nil {
			continue
		}
		all = append(all, items...)
	}

	seen := make(map[string]struct{}, len(all))
	items := make([]domain.MentalUpdate, 0, config.MaxNewsItems)
	for _, item := range all {
		if _, ok := seen[item.Title]; ok {
			continue
		}
		seen[item.Title] = struct{}{}
		items = append(items, item)
		if len(items) == config.MaxNewsItems {
			break
		}
	}
	return items
}

func (s *NewsService) fetchFeed(ctx context.Context, feedURL string) ([]domain.MentalUpdate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var items []domain.MentalUpdate
	doc.Find("item").Each(func(_ int, sel *goquery.Selection) {
		item := domain.MentalUpdate{
			Title:       strings.TrimSpace(sel.Find("title").Text()),
			Link:        voidTagText(sel, "link"),
			PublishedAt: strings.TrimSpace(sel.Find("pubdate").Text()),
			Source:      voidTagText(sel, "source"),
		}
		if item.Source == "" {
			item.Source = "Global News"
		}
		if item.Title != "" && item.Link != "" {
			items = append(items, item)
		}
	})

	return items, nil
}

// voidTagText digs the content out of RSS tags the HTML parser treats as
// void elements (link, source): their text ends up in the node following
// the element rather than inside it.
func voidTagText(sel *goquery.Selection, tag string) string {
	found := sel.Find(tag)
	if found.Length() == 0 {
		return ""
	}
	node := found.Get(0)
	if node.NextSibling == nil || node.NextSibling.Type != html.TextNode {
		return ""
	}
	return strings.TrimSpace(node.NextSibling.Data)
}

// DailyQuote tries the live quote API and falls back to the local list.
func (s *NewsService) DailyQuote(ctx context.Context) domain.Quote {
	quote, err := s.fetchQuote(ctx)
	if err == nil {
		return quote
	}
	return localQuotes[time.Now().UTC().Day()%len(localQuotes)]
}

func (s *NewsService) fetchQuote(ctx context.Context) (domain.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.quoteURL+"/api/today", nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Quote{}, fmt.Errorf("fetch quote status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("read response: %w", err)
	}

	var data []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return domain.Quote{}, fmt.Errorf("parse quote: %w", err)
	}

	if len(data) == 0 || data[0].Q == "" {
		return domain.Quote{}, domain.ErrQuoteUnavailable
	}

	author := data[0].A
	if author == "" {
		author = "Unknown"
	}
	return domain.Quote{Quote: data[0].Q, Author: author}, nil
}
