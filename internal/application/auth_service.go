package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/driftcode/minifeed/internal/domain/entity"
	repo "github.com/driftcode/minifeed/internal/domain/repository"
	"github.com/driftcode/minifeed/internal/session"
	"github.com/driftcode/minifeed/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUsernameTaken      = errors.New("username already taken")
)

type AuthService struct {
	Users    repo.UserRepository
	Sessions session.Store
	Logger   *logrus.Logger
}

func NewAuthService(users repo.UserRepository, sessions session.Store, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, Logger: logger}
}

// Signup creates the account and immediately establishes a session for it.
func (s *AuthService) Signup(ctx context.Context, username, email, password, repeat string) (*session.Record, error) {
	if password != repeat {
		return nil, ErrPasswordMismatch
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		ID:           helpers.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.Users.Create(u); err != nil {
		switch {
		case errors.Is(err, repo.ErrEmailTaken):
			return nil, ErrEmailTaken
		case errors.Is(err, repo.ErrUsernameTaken):
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user signed up")

	return s.Sessions.Create(ctx, u)
}

// Login verifies the credentials and establishes a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Record, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	s.Logger.WithField("user_id", u.ID).Debug("login verified")

	return s.Sessions.Create(ctx, u)
}

// Logout destroys the session unconditionally.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Destroy(ctx, token)
}
