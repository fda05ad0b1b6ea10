package service

import (
	"fmt"
	"math/rand"

	"github.com/aadya284/mood-enhancer/internal/config"
	"github.com/aadya284/mood-enhancer/internal/domain"
)

// SystemPrompt pins the model to machine-readable output.
const SystemPrompt = "You are a mood-based content recommendation expert. Always respond with valid JSON only, no additional text."

const promptTemplate = `
Based on this person's mood assessment, provide %d DIVERSE and DIFFERENT personalized recommendations for each category. Use variety and avoid repeating the same popular titles.

Mood Assessment:
- Current mood: %s
- Day rating: %s
- Energy level: %s
- Personal story: %s
- Content preferences: %s
- Desired activity: %s
- Random seed: %d

IMPORTANT:
- Provide DIFFERENT recommendations each time, not the same popular ones
- Include both mainstream AND lesser-known quality content
- For images, provide SPECIFIC search terms that will find actual movie posters, album covers, etc.

Please provide recommendations in this exact JSON format:
{
  "movies": [
    {
      "title": "Movie Title",
      "description": "Brief description",
      "genre": "Genre",
      "duration": "1h 30m",
      "rating": 4.5,
      "reason": "Why this matches their mood",
      "searchQuery": "Movie Title 2023 movie poster"
    }
  ],
  "music": [
    {
      "title": "Song/Album/Playlist Title",
      "description": "Brief description",
      "genre": "Genre",
      "duration": "3:45",
      "rating": 4.8,
      "reason": "Why this matches their mood",
      "searchQuery": "Artist Name Album Title album cover"
    }
  ],
  "podcasts": [
    {
      "title": "Podcast Title",
      "description": "Brief description",
      "genre": "Category",
      "duration": "45m",
      "rating": 4.7,
      "reason": "Why this matches their mood",
      "searchQuery": "Podcast Title podcast logo cover"
    }
  ],
  "audiobooks": [
    {
      "title": "Book Title",
      "description": "Brief description",
      "genre": "Genre",
      "duration": "8h 30m",
      "rating": 4.6,
      "reason": "Why this matches their mood",
      "searchQuery": "book cover audiobook"
    }
  ],
  "games": [
    {
      "title": "Game Title",
      "description": "Brief description",
      "genre": "Genre",
      "rating": 4.9,
      "reason": "Why this matches their mood",
      "searchQuery": "video game screenshot"
    }
  ]
}

Make sure all recommendations are real, popular content that exists. Focus on content that would genuinely help improve or complement their current emotional state.
`

// BuildPrompt renders the instruction for one assessment. A random seed is
// embedded so identical assessments are not forced toward identical picks.
func BuildPrompt(a domain.MoodAssessment) string {
	seed := rand.Intn(config.PromptSeedRange)
	return fmt.Sprintf(promptTemplate,
		config.ItemsPerCategory,
		a.Mood,
		a.Day,
		a.Energy,
		a.Story,
		a.Preferences,
		a.Activity,
		seed,
	)
}
