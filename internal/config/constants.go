package config

import "time"

const (
	// Upstream request timeout
	RequestTimeout = 30 * time.Second

	// Chat completion parameters
	ChatTemperature = 0.7
	ChatMaxTokens   = 2000

	// Recommendations requested per category
	ItemsPerCategory = 2

	// Upper bound (exclusive) for the prompt randomization seed
	PromptSeedRange = 1000

	// Headlines returned by the mental-updates endpoint
	MaxNewsItems = 12

	// API rate limit per IP
	RateLimitRequests = 30
	RateLimitWindow   = time.Minute

	// Server shutdown grace period
	ShutdownTimeout = 10 * time.Second
)

// ChatModels are tried in order until one returns content.
var ChatModels = []string{
	"gpt-4o-mini",
	"gpt-3.5-turbo",
	"gpt-4o",
}

// NewsFeeds aggregated by the mental-updates endpoint.
var NewsFeeds = []string{
	"https://news.google.com/rss/search?q=mental+health&hl=en-US&gl=US&ceid=US:en",
	"https://news.google.com/rss/search?q=wellbeing+mindfulness&hl=en-US&gl=US&ceid=US:en",
}
