package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

type BlogRepository struct {
	DB *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, title, slug, excerpt, cover_image, content, published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Slug,
		nullString(post.Excerpt),
		nullString(post.CoverImage),
		post.Content,
		post.Published,
	).Scan(&post.CreatedAt)
}

func (r *BlogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $1, slug = $2, excerpt = $3, cover_image = $4, content = $5, published = $6
		WHERE id = $7
	`

	res, err := r.DB.ExecContext(ctx, query,
		post.Title, post.Slug, nullString(post.Excerpt), nullString(post.CoverImage),
		post.Content, post.Published, post.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// FindBySlug returns the first match. Slug uniqueness is advisory, two posts
// can collide.
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := scanBlogPost(r.DB.QueryRowContext(ctx,
		blogSelect+` WHERE slug = $1 ORDER BY created_at ASC LIMIT 1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return post, err
}

func (r *BlogRepository) ListPublished(ctx context.Context) ([]*entity.BlogPost, error) {
	return r.list(ctx, blogSelect+` WHERE published ORDER BY created_at DESC`)
}

func (r *BlogRepository) List(ctx context.Context) ([]*entity.BlogPost, error) {
	return r.list(ctx, blogSelect+` ORDER BY created_at DESC`)
}

func (r *BlogRepository) list(ctx context.Context, query string) ([]*entity.BlogPost, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*entity.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const blogSelect = `
	SELECT id, title, slug, excerpt, cover_image, content, published, created_at
	FROM blog_posts`

func scanBlogPost(row rowScanner) (*entity.BlogPost, error) {
	var post entity.BlogPost
	var excerpt, coverImage sql.NullString

	err := row.Scan(&post.ID, &post.Title, &post.Slug, &excerpt, &coverImage,
		&post.Content, &post.Published, &post.CreatedAt)
	if err != nil {
		return nil, err
	}

	post.Excerpt = stringOrEmpty(excerpt)
	post.CoverImage = stringOrEmpty(coverImage)
	return &post, nil
}
