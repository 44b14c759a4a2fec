package models

import (
	"strings"
	"time"
)

// NormalizeUsername folds an admin login to its canonical stored form.
// Both the login handler and the createadmin CLI go through this, so
// an account created as "Admin" can still sign in.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
