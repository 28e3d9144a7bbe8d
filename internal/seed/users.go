package seed

import (
	"fmt"

	"github.com/svit/internhub/internal/app/models"
	"github.com/svit/internhub/internal/pkg/auth"
)

// demo credentials, mirroring the portal's sample accounts
type seedUser struct {
	id       int64
	username string
	password string
	role     models.RoleType
	name     string
	student  *int64
}

var seedUsers = []seedUser{
	{id: 1, username: "admin", password: "svit2023", role: models.RoleAdmin, name: "Admin User"},
	{id: 2, username: "faculty", password: "faculty2023", role: models.RoleFaculty, name: "Faculty Member"},
	{id: 3, username: "student", password: "student2023", role: models.RoleStudent, name: "Student User", student: ref(1)},
}

// Users returns the default portal accounts with freshly hashed passwords
func Users() ([]models.User, error) {
	users := make([]models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := auth.HashPassword(su.password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", su.username, err)
		}
		users = append(users, models.User{
			ID:           su.id,
			Username:     su.username,
			PasswordHash: hash,
			Role:         su.role,
			Name:         su.name,
			StudentID:    su.student,
		})
	}
	return users, nil
}
