package entity

import (
	"time"
)

// DefaultRole is assigned when a signup or admin create request carries no roles.
const DefaultRole = "USER"

// RoleAdmin grants access to the /admin surface.
const RoleAdmin = "ADMIN"

// User is an account record. Password always holds the bcrypt hash,
// never plaintext.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	Roles     []string  `json:"roles"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUser(id, username, email, hashedPassword, fullName string, roles []string) *User {
	if len(roles) == 0 {
		roles = []string{DefaultRole}
	}
	now := time.Now()
	return &User{
		ID:        id,
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		FullName:  fullName,
		Roles:     roles,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
