package models

import "time"

// Bookmark represents a post bookmarked by a user
type Bookmark struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BookmarkedBy     string    `json:"bookmarked_by" gorm:"size:64;index;uniqueIndex:idx_bookmark_user_item"`
	BookmarkedItemID string    `json:"bookmarked_item_id" gorm:"size:64;index;uniqueIndex:idx_bookmark_user_item"`
	CreatedAt        time.Time `json:"created_at"`
}

// BookmarkView is a bookmark with its user and/or post resolved at read time
type BookmarkView struct {
	Bookmark
	User *User     `json:"user,omitempty"`
	Item *PostView `json:"item,omitempty"`
}
