package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

// aboutKey addresses the singleton about-us row.
const aboutKey = "about_us"

type AboutRepository struct {
	DB *sql.DB
}

func NewAboutRepository(db *sql.DB) *AboutRepository {
	return &AboutRepository{DB: db}
}

// Get returns empty content when the row was never written; the site renders
// its static fallback in that case.
func (r *AboutRepository) Get(ctx context.Context) (*entity.AboutContent, error) {
	var c entity.AboutContent
	var image sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT headline, story, image_url FROM site_content WHERE key = $1`, aboutKey,
	).Scan(&c.Headline, &c.Story, &image)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.AboutContent{}, nil
	}
	if err != nil {
		return nil, err
	}
	c.ImageURL = stringOrEmpty(image)
	return &c, nil
}

func (r *AboutRepository) Put(ctx context.Context, c *entity.AboutContent) error {
	query := `
		INSERT INTO site_content (key, headline, story, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key)
		DO UPDATE SET headline = EXCLUDED.headline,
		              story = EXCLUDED.story,
		              image_url = EXCLUDED.image_url
	`

	_, err := r.DB.ExecContext(ctx, query, aboutKey, c.Headline, c.Story, nullString(c.ImageURL))
	return err
}
