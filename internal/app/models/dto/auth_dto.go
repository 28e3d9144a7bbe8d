package dto

import "github.com/svit/internhub/internal/app/models"

// LoginRequest carries portal credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"` // Access token lifetime in seconds
	TokenType    string `json:"tokenType" example:"Bearer"`
}

// UserResponse is the public view of a portal account
type UserResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Role      models.RoleType `json:"role"`
	Name      string          `json:"name"`
	StudentID *int64          `json:"studentId,omitempty"`
}

// NewUserResponse maps a user model to its public view
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Name:      user.Name,
		StudentID: user.StudentID,
	}
}
