package domain

import "time"

type User struct {
	ID           int64
	Username     string
	DisplayName  string
	PasswordHash string // argon2 encoded
	Token        string // active session token, "" when logged out
	CreatedAt    time.Time
}
