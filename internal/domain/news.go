package domain

// MentalUpdate is one aggregated news headline.
type MentalUpdate struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
}

type MentalUpdatesResponse struct {
	Items []MentalUpdate `json:"items"`
}

type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}
