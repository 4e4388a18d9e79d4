package entity

import "context"

// AboutContent is the marketing site's about-us page body. Singleton by
// convention, same as Settings: repositories address it by a fixed key.
type AboutContent struct {
	Headline string `json:"headline"`
	Story    string `json:"story"` // rich HTML
	ImageURL string `json:"image_url,omitempty"`
}

type AboutRepositoryInterface interface {
	Get(ctx context.Context) (*AboutContent, error)
	Put(ctx context.Context, content *AboutContent) error
}
