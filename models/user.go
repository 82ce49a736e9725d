package models

import "time"

// User is an account owning recipes, custom categories, preferences and a
// grocery list.
type User struct {
	// UserID is never serialized; clients learn it only through the token.
	UserID int64 `json:"-"`

	Login string `json:"login"`
	Name  string `json:"name,omitempty"`

	// Password is set on register and login requests only and never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored bcrypt hash.
	PasswordHash string `json:"-"`

	// Locale is the preferred language ("en", "de") used when a request
	// does not name one.
	Locale string `json:"locale,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
