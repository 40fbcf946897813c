package models

import "time"

// Message is a direct message from one user to another.
// Messages are never updated once stored.
type Message struct {
	ID     string    `json:"id" gorm:"primaryKey;size:64"`
	From   string    `json:"from" gorm:"column:from_user;size:64;index;index:idx_message_from_sent"`
	To     string    `json:"to" gorm:"column:to_user;size:64;index"`
	Body   string    `json:"body" gorm:"type:text"`
	SentOn time.Time `json:"sent_on" gorm:"index:idx_message_from_sent"`
}
