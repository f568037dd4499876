package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"newsroom-api/internal/domain/entity"
	"newsroom-api/internal/domain/repository"
)

var ErrArticleNotFound = errors.New("article not found")

// createdAtLayout is the text timestamp stored on articles. The value is
// captured per insert, not at process start.
const createdAtLayout = "2006-01-02 15:04:05"

// ArticleService implements the article store operations on top of the
// repository.
type ArticleService struct {
	Repo   repository.ArticleRepository
	Logger *logrus.Logger
}

func NewArticleService(repo repository.ArticleRepository, logger *logrus.Logger) *ArticleService {
	return &ArticleService{Repo: repo, Logger: logger}
}

// Create inserts a new article. Status defaults to draft when empty;
// createdAt is captured at call time.
func (s *ArticleService) Create(ctx context.Context, f repository.ArticleFields) (*entity.Article, error) {
	if f.Status == "" {
		f.Status = entity.StatusDraft
	}
	a := &entity.Article{
		Title:       f.Title,
		Category:    f.Category,
		Status:      f.Status,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		CreatedAt:   time.Now().Format(createdAtLayout),
	}
	if err := s.Repo.Insert(ctx, a); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("insert article failed")
		}
		return nil, err
	}
	return a, nil
}

func (s *ArticleService) List(ctx context.Context) ([]entity.Article, error) {
	articles, err := s.Repo.FindAll(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("list articles failed")
		}
		return nil, err
	}
	return articles, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*entity.Article, error) {
	a, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Error("get article failed")
		}
		return nil, err
	}
	return a, nil
}

// Update overwrites the five caller-supplied fields and returns the
// post-update article.
func (s *ArticleService) Update(ctx context.Context, id string, f repository.ArticleFields) (*entity.Article, error) {
	a, err := s.Repo.UpdateFields(ctx, id, f)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Error("update article failed")
		}
		return nil, err
	}
	return a, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrArticleNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Error("delete article failed")
		}
		return err
	}
	return nil
}
