package services

import (
	"sync"
	"time"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/app/models/dto"
	"github.com/svit/internhub/internal/pkg/apperrors"
	"github.com/svit/internhub/internal/pkg/auth"
)

// refreshRecord tracks an issued refresh token
type refreshRecord struct {
	userID    int64
	expiresAt time.Time
}

// AuthService authenticates portal accounts and issues token pairs.
// Accounts are seeded at startup; registration is not part of the portal.
type AuthService struct {
	mu            sync.Mutex
	users         []models.User
	refreshTokens map[string]refreshRecord
	jwtService    *auth.JWTService
}

// NewAuthService creates an auth service over the given accounts
func NewAuthService(users []models.User, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:         users,
		refreshTokens: make(map[string]refreshRecord),
		jwtService:    jwtService,
	}
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(username, password string) (*dto.TokenResponse, *models.User, error) {
	user := s.userByUsername(username)
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}
	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return tokens, user, nil
}

// Refresh exchanges a valid refresh token for a new pair. The old refresh
// token is revoked in the same step.
func (s *AuthService) Refresh(refreshToken string) (*dto.TokenResponse, error) {
	s.mu.Lock()
	record, ok := s.refreshTokens[refreshToken]
	if ok {
		delete(s.refreshTokens, refreshToken)
	}
	s.mu.Unlock()

	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	if time.Now().After(record.expiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user := s.UserByID(record.userID)
	if user == nil {
		return nil, apperrors.ErrTokenInvalid
	}
	return s.issueTokens(user)
}

// UserByID returns the account with the given id, nil when unknown
func (s *AuthService) UserByID(id int64) *models.User {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

func (s *AuthService) userByUsername(username string) *models.User {
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.refreshTokens[refreshToken] = refreshRecord{
		userID:    user.ID,
		expiresAt: time.Now().Add(s.jwtService.RefreshTokenTTL()),
	}
	s.mu.Unlock()

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	}, nil
}
