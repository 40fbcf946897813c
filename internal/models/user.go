package models

import "time"

// User is the externally owned account record. This service only reads it
// to resolve identities on relationship reads.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;size:64"`
	Username    string    `json:"username" gorm:"uniqueIndex"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
