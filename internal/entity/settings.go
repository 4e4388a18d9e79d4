package entity

import "context"

// Settings is the process-wide configuration document. Singleton by
// convention: repositories address it by a fixed key.
type Settings struct {
	WebhookURL string `json:"webhook_url"`
}

type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*Settings, error)
	Put(ctx context.Context, settings *Settings) error
}
