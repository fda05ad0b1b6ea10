package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// OpenAI: absence switches the pipeline to the static fallback catalog
	OpenAIKey string `env:"OPENAI_API_KEY"`

	// Unsplash: absence switches image lookup to the keyword table and
	// static pool
	UnsplashKey string `env:"UNSPLASH_ACCESS_KEY"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
