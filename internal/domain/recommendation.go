package domain

const (
	CategoryMovies     = "movies"
	CategoryMusic      = "music"
	CategoryPodcasts   = "podcasts"
	CategoryAudiobooks = "audiobooks"
	CategoryGames      = "games"
)

// Categories lists the five content categories in the order the client
// renders its tabs.
var Categories = []string{
	CategoryMovies,
	CategoryMusic,
	CategoryPodcasts,
	CategoryAudiobooks,
	CategoryGames,
}

// RecommendationItem is one card in a category tab. ID is only unique
// within a single response.
type RecommendationItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Duration    string  `json:"duration,omitempty"`
	Rating      float64 `json:"rating"`
	Reason      string  `json:"reason"`
	ImageURL    string  `json:"imageUrl"`
	ExternalURL string  `json:"externalUrl"`
}

// RecommendationCategories always serializes all five keys, even when a
// category came back empty.
type RecommendationCategories struct {
	Movies     []RecommendationItem `json:"movies"`
	Music      []RecommendationItem `json:"music"`
	Podcasts   []RecommendationItem `json:"podcasts"`
	Audiobooks []RecommendationItem `json:"audiobooks"`
	Games      []RecommendationItem `json:"games"`
}

// Get returns the items for a category name.
func (c *RecommendationCategories) Get(category string) []RecommendationItem {
	switch category {
	case CategoryMovies:
		return c.Movies
	case CategoryMusic:
		return c.Music
	case CategoryPodcasts:
		return c.Podcasts
	case CategoryAudiobooks:
		return c.Audiobooks
	case CategoryGames:
		return c.Games
	}
	return nil
}

// Set stores the items for a category name. Unknown categories are dropped.
func (c *RecommendationCategories) Set(category string, items []RecommendationItem) {
	switch category {
	case CategoryMovies:
		c.Movies = items
	case CategoryMusic:
		c.Music = items
	case CategoryPodcasts:
		c.Podcasts = items
	case CategoryAudiobooks:
		c.Audiobooks = items
	case CategoryGames:
		c.Games = items
	}
}

type RecommendationResponse struct {
	Mood       string                   `json:"mood"`
	Categories RecommendationCategories `json:"categories"`
}
