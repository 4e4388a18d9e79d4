package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

// settingsKey addresses the singleton configuration row.
const settingsKey = "global"

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns empty settings when the row was never written; the relay
// treats an empty webhook URL as "not configured".
func (r *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var s entity.Settings
	err := r.DB.QueryRowContext(ctx,
		`SELECT webhook_url FROM settings WHERE key = $1`, settingsKey,
	).Scan(&s.WebhookURL)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Put(ctx context.Context, s *entity.Settings) error {
	query := `
		INSERT INTO settings (key, webhook_url)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET webhook_url = EXCLUDED.webhook_url
	`

	_, err := r.DB.ExecContext(ctx, query, settingsKey, s.WebhookURL)
	return err
}
