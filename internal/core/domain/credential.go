package domain

import "time"

// GuardianCredential lets a guardian identity obtain bearer tokens.
type GuardianCredential struct {
	Address      string    `json:"address"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
