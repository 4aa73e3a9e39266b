package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sayalimunde/mini-lms/internal/auth"
	"github.com/sayalimunde/mini-lms/internal/models"
	repo "github.com/sayalimunde/mini-lms/internal/repository"
	"github.com/sayalimunde/mini-lms/internal/session"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // access token lifetime, seconds
}

type AuthService struct {
	users      repo.Users
	tm         *auth.TokenManager
	sessions   session.Store
	refreshTTL time.Duration
}

func NewAuthService(users repo.Users, tm *auth.TokenManager, sessions session.Store, refreshTTL time.Duration) *AuthService {
	return &AuthService{users: users, tm: tm, sessions: sessions, refreshTTL: refreshTTL}
}

// Register creates the role-bearing profile record and opens a session.
// The role is fixed here for good: no later operation can change it.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string, role models.Role) (models.User, TokenPair, error) {
	u := models.User{Email: strings.TrimSpace(email), DisplayName: strings.TrimSpace(displayName), Role: role}
	if err := u.Validate(); err != nil {
		return models.User{}, TokenPair{}, err
	}
	if len(password) < 6 {
		return models.User{}, TokenPair{}, errors.New("password must be at least 6 chars")
	}

	if _, err := s.users.GetByEmail(ctx, u.Email); err == nil {
		return models.User{}, TokenPair{}, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return models.User{}, TokenPair{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	created, err := s.users.Create(ctx, u.Email, u.DisplayName, hash, u.Role)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	pair, err := s.openSession(ctx, created.ID, created.Role)
	return created, pair, err
}

func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}
	pair, err := s.openSession(ctx, u.ID, u.Role)
	return u, pair, err
}

// Refresh rotates the pair: the presented refresh token must still be in
// the session store (logout removes it) and is replaced by the new one.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if _, err := s.sessions.Check(ctx, refreshToken); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}
	if err := s.sessions.Delete(ctx, refreshToken); err != nil {
		return TokenPair{}, fmt.Errorf("rotate session: %w", err)
	}
	return s.openSession(ctx, claims.UserID, claims.Role)
}

// Logout tears the session down; subsequent refreshes with the token fail.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.sessions.Delete(ctx, refreshToken)
}

func (s *AuthService) openSession(ctx context.Context, userID string, role models.Role) (TokenPair, error) {
	access, refresh, exp, err := s.tm.GeneratePair(userID, role)
	if err != nil {
		return TokenPair{}, err
	}
	if err := s.sessions.Save(ctx, refresh, userID, s.refreshTTL); err != nil {
		return TokenPair{}, fmt.Errorf("save session: %w", err)
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(time.Until(exp).Seconds()),
	}, nil
}
