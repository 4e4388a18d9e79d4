package entity

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlogPost is a content entity. Slug uniqueness is advisory: lookups by slug
// return the first match.
type BlogPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt,omitempty"`
	CoverImage string    `json:"cover_image,omitempty"`
	Content    string    `json:"content"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
}

type BlogRepositoryInterface interface {
	Create(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, post *BlogPost) error
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	ListPublished(ctx context.Context) ([]*BlogPost, error)
	List(ctx context.Context) ([]*BlogPost, error)
	Delete(ctx context.Context, id string) error
}

func NewBlogPost(title, slug, excerpt, coverImage, content string, published bool) *BlogPost {
	if slug == "" {
		slug = Slugify(title)
	}
	return &BlogPost{
		ID:         uuid.New().String(),
		Title:      title,
		Slug:       slug,
		Excerpt:    excerpt,
		CoverImage: coverImage,
		Content:    content,
		Published:  published,
	}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
