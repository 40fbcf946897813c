package models

import "time"

// Follow represents a user following another user
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID string    `json:"follower_id" gorm:"size:64;index;uniqueIndex:idx_follower_followed"`
	FollowedID string    `json:"followed_id" gorm:"size:64;index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowView is a follow with the user on the other side of the edge resolved
type FollowView struct {
	Follow
	Follower *User `json:"follower,omitempty"`
	Followed *User `json:"followed,omitempty"`
}
