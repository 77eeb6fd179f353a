package model

import (
	"neighbortask.com/neighbortask/internal/constants"
)

type Connection struct {
	ID            string                     `gorm:"primaryKey;size:36" json:"id"`
	TaskID        string                     `gorm:"size:36;not null;index" json:"task_id"`
	WorkerID      string                     `gorm:"size:36;not null" json:"worker_id"`
	WorkerName    string                     `gorm:"not null" json:"worker_name"`
	PosterID      string                     `gorm:"size:36;not null" json:"poster_id"`
	PosterName    string                     `gorm:"not null" json:"poster_name"`
	Status        constants.ConnectionStatus `gorm:"type:varchar(20);not null" json:"status"`
	ConnectedDate string                     `gorm:"type:varchar(10)" json:"connected_date"`
	AgreedPrice   int                        `gorm:"not null" json:"agreed_price"`
}

// Involves reports whether userID is the worker or the poster side.
func (c *Connection) Involves(userID string) bool {
	return c.WorkerID == userID || c.PosterID == userID
}
