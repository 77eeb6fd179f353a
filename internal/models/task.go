package model

import (
	"neighbortask.com/neighbortask/internal/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Description string               `gorm:"not null" json:"description"`
	Category    string               `gorm:"type:varchar(32);not null" json:"category"`
	Price       int                  `gorm:"not null" json:"price"`
	Location    string               `json:"location"`
	PostedBy    string               `gorm:"not null" json:"posted_by"`
	PostedDate  string               `gorm:"type:varchar(10)" json:"posted_date"`
	Deadline    string               `gorm:"type:varchar(10)" json:"deadline"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	Applicants  []string             `gorm:"serializer:json" json:"applicants"`
	AssignedTo  string               `json:"assigned_to,omitempty"`
	Images      []string             `gorm:"serializer:json" json:"images,omitempty"`
}

// HasApplicant reports whether userID is in the task's applicant list.
func (t *Task) HasApplicant(userID string) bool {
	for _, id := range t.Applicants {
		if id == userID {
			return true
		}
	}
	return false
}
