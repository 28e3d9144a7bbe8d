package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleFaculty RoleType = "faculty"
	RoleStudent RoleType = "student"
)

// User defines a portal user account. Student accounts carry a StudentID
// pointing at a Student record; the store does not validate that it exists.
type User struct {
	ID           int64    `json:"id" example:"1"`
	Username     string   `json:"username" example:"admin"`
	PasswordHash string   `json:"-"` // bcrypt hash, never serialized
	Role         RoleType `json:"role" example:"admin"`
	Name         string   `json:"name" example:"Admin User"`
	StudentID    *int64   `json:"studentId,omitempty"` // Only set for student accounts
}
