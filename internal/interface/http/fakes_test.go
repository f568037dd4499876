package handlers_test

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsroom-api/config"
	"newsroom-api/internal/application"
	"newsroom-api/internal/domain/entity"
	"newsroom-api/internal/domain/repository"
	handlers "newsroom-api/internal/interface/http"
	"newsroom-api/internal/router/modules"
	"newsroom-api/pkg/helpers"
	"newsroom-api/pkg/validation"
)

// In-memory repositories and router assembly shared by the handler tests.

type fakeArticleRepo struct {
	mu    sync.Mutex
	items []entity.Article
}

func (f *fakeArticleRepo) Insert(_ context.Context, a *entity.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = primitive.NewObjectID()
	f.items = append(f.items, *a)
	return nil
}

func (f *fakeArticleRepo) FindAll(_ context.Context) ([]entity.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Article, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeArticleRepo) FindByID(_ context.Context, id string) (*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == oid {
			a := f.items[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeArticleRepo) UpdateFields(_ context.Context, id string, fl repository.ArticleFields) (*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == oid {
			f.items[i].Title = fl.Title
			f.items[i].Category = fl.Category
			f.items[i].Status = fl.Status
			f.items[i].Description = fl.Description
			f.items[i].ImageURL = fl.ImageURL
			a := f.items[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeArticleRepo) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == oid {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == oid {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

var (
	_ repository.ArticleRepository = (*fakeArticleRepo)(nil)
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
)

type testEnv struct {
	router      *gin.Engine
	articleRepo *fakeArticleRepo
	userRepo    *fakeUserRepo
	jwt         *helpers.JWTManager
}

// newEnv assembles the real route modules over in-memory repositories.
func newEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	validation.Init()

	articleRepo := &fakeArticleRepo{}
	userRepo := &fakeUserRepo{}
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	cfg := &config.Config{AppName: "newsroom-api-test"}

	articleSvc := application.NewArticleService(articleRepo, nil)
	userSvc := application.NewUserService(userRepo, jwt, nil)

	r := gin.New()
	api := r.Group("/api")
	modules.NewArticleModule(handlers.NewArticleHandler(articleSvc, nil, nil, ""), jwt).Register(api)
	modules.NewUserModule(handlers.NewUserHandler(userSvc, nil, cfg, nil), jwt).Register(api)

	return &testEnv{router: r, articleRepo: articleRepo, userRepo: userRepo, jwt: jwt}
}
