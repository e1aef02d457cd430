package user

import "gorm.io/gorm"

const (
	RoleFederation    = "federation"
	RoleAdministrator = "administrator"
)

// User is an account able to register a federation. Administrators may also
// seed, reset, and simulate the tournament.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"default:'federation'"`
}

// IsAdmin reports whether the user may perform tournament administration.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrator
}
