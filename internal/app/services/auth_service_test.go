package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/pkg/apperrors"
	"github.com/svit/internhub/internal/pkg/auth"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword("svit2023")
	require.NoError(t, err)

	studentID := int64(1)
	users := []models.User{
		{ID: 1, Username: "admin", PasswordHash: hash, Role: models.RoleAdmin, Name: "Admin"},
		{ID: 3, Username: "student", PasswordHash: hash, Role: models.RoleStudent, Name: "Student", StudentID: &studentID},
	}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "internhub-test",
	})
	return NewAuthService(users, jwtService)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	tokens, user, err := svc.Login("admin", "svit2023")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "svit2023")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newAuthService(t)

	tokens, _, err := svc.Login("student", "svit2023")
	require.NoError(t, err)

	rotated, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// The old refresh token is revoked on use
	_, err = svc.Refresh(tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestRefreshUnknownToken(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Refresh("never-issued")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestUserByID(t *testing.T) {
	svc := newAuthService(t)

	user := svc.UserByID(3)
	require.NotNil(t, user)
	assert.Equal(t, "student", user.Username)
	require.NotNil(t, user.StudentID)
	assert.Equal(t, int64(1), *user.StudentID)

	assert.Nil(t, svc.UserByID(42))
}
