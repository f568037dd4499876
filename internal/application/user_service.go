package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"newsroom-api/internal/domain/entity"
	"newsroom-api/internal/domain/repository"
	"newsroom-api/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService handles signup, login and role lookup.
type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SignUp creates a user with a bcrypt-hashed password. The friendly
// existence check runs first; the unique index on email is what actually
// guarantees at most one user per address under concurrent signups.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) (*entity.User, error) {
	if _, err := s.Repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("signup email lookup failed")
		}
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
		Role:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// lost the race against a concurrent signup
			return nil, ErrEmailTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create user failed")
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token carrying the user id.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("login email lookup failed")
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID.Hex())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate token failed")
		}
		return "", err
	}
	return token, nil
}

// Role resolves the role flag for the user id embedded in a verified token.
func (s *UserService) Role(ctx context.Context, userID string) (bool, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrUserNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("role lookup failed")
		}
		return false, err
	}
	return u.Role, nil
}
