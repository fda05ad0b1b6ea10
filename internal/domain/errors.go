package domain

import "errors"

var (
	ErrNoAPIKey         = errors.New("openai api key not configured")
	ErrNoContent        = errors.New("no content received from model")
	ErrMalformedOutput  = errors.New("model output is not valid json")
	ErrNoImageResults   = errors.New("image search returned no results")
	ErrQuoteUnavailable = errors.New("quote service unavailable")
)
