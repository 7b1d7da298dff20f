package models

import "time"

// Session binds a refresh-token hash to a user. Only the SHA-256 hash of the
// refresh token is ever stored; the raw token lives exclusively on the client.
type Session struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	RefreshTokenHash string    `json:"-" db:"refresh_token_hash"`
	ExpiresAt        time.Time `json:"expires_at" db:"expires_at"`
	IP               string    `json:"ip" db:"ip"`
	UserAgent        string    `json:"user_agent" db:"user_agent"`
}
