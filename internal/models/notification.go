package model

import (
	"time"

	"neighbortask.com/neighbortask/internal/constants"
)

// Notification targets a recipient handle: a user id when one is known, or a
// display name for task posters, which the task data references by name only.
type Notification struct {
	ID          string                       `gorm:"primaryKey;size:36" json:"id"`
	Recipient   string                       `gorm:"not null;index" json:"recipient"`
	Kind        string                       `gorm:"type:varchar(32);not null" json:"kind"`
	Body        string                       `gorm:"not null" json:"body"`
	Status      constants.NotificationStatus `gorm:"type:varchar(20);not null" json:"status"`
	Version     uint                         `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time                    `json:"created_at"`
	DeliveredAt *time.Time                   `json:"delivered_at,omitempty"`
}
