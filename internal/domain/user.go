package domain

import "time"

// User is a registered account. Email is stored normalized (trimmed, lower-cased).
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	DisplayName  string
	Role         Role
	CreatedAt    time.Time
}
