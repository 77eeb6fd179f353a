package model

import (
	"time"

	"neighbortask.com/neighbortask/internal/constants"
)

// Message is append-only: rows are never updated or deleted once written.
type Message struct {
	ID         string                `gorm:"primaryKey;size:36" json:"id"`
	TaskID     string                `gorm:"size:36;not null;index" json:"task_id"`
	SenderID   string                `gorm:"size:36;not null" json:"sender_id"`
	SenderName string                `gorm:"not null" json:"sender_name"`
	ReceiverID string                `gorm:"size:36;not null" json:"receiver_id"`
	Content    string                `gorm:"not null" json:"content"`
	Timestamp  time.Time             `gorm:"not null" json:"timestamp"`
	Type       constants.MessageType `gorm:"type:varchar(20);not null" json:"type"`
}
