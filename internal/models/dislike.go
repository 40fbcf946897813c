package models

import "time"

// Dislike represents a user disliking a post
type Dislike struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	DislikedBy     string    `json:"disliked_by" gorm:"size:64;index;uniqueIndex:idx_dislike_user_item"`
	DislikedItemID string    `json:"disliked_item_id" gorm:"size:64;index;uniqueIndex:idx_dislike_user_item"`
	CreatedAt      time.Time `json:"created_at"`
}

// DislikeView is a dislike with its user and/or post resolved at read time
type DislikeView struct {
	Dislike
	User *User     `json:"user,omitempty"`
	Item *PostView `json:"item,omitempty"`
}
