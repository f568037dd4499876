package repository

import (
	"context"

	"newsroom-api/internal/domain/entity"
)

// ArticleFields are the caller-supplied fields of an article. Update
// overwrites exactly these five fields on the stored document.
type ArticleFields struct {
	Title       string
	Category    string
	Status      string
	Description string
	ImageURL    string
}

// ArticleRepository defines the interface for article persistence.
type ArticleRepository interface {
	Insert(ctx context.Context, a *entity.Article) error
	FindAll(ctx context.Context) ([]entity.Article, error)
	FindByID(ctx context.Context, id string) (*entity.Article, error)
	UpdateFields(ctx context.Context, id string, f ArticleFields) (*entity.Article, error)
	Delete(ctx context.Context, id string) error
}
