package domain

import (
	"net/url"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the authenticated user as seen by views and services.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Account is an Identity plus the credential it signs in with.
type Account struct {
	Identity
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type Session struct {
	ID        string    `json:"id"`
	User      Identity  `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// AvatarURL returns the generated avatar for a seed such as a name or email.
func AvatarURL(seed string) string {
	return avatarBaseURL + url.QueryEscape(seed)
}
