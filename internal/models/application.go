package model

import (
	"neighbortask.com/neighbortask/internal/constants"
)

type Application struct {
	ID            string                      `gorm:"primaryKey;size:36" json:"id"`
	TaskID        string                      `gorm:"size:36;not null;index" json:"task_id"`
	UserID        string                      `gorm:"size:36;not null" json:"user_id"`
	UserName      string                      `gorm:"not null" json:"user_name"`
	UserRating    float64                     `json:"user_rating"`
	Message       string                      `gorm:"not null" json:"message"`
	ProposedPrice int                         `gorm:"not null" json:"proposed_price"`
	AppliedDate   string                      `gorm:"type:varchar(10)" json:"applied_date"`
	Status        constants.ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	Phone         string                      `json:"phone,omitempty"`
}
