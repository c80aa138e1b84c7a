// Package models defines the store's account records. Papers and words are
// persisted straight from the domain package types.
package models

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
