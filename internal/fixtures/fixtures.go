package fixtures

import (
	"time"

	"gorm.io/gorm"

	"neighbortask.com/neighbortask/internal/constants"
	model "neighbortask.com/neighbortask/internal/models"
)

// Tasks returns the six seed tasks in source order. Browse and application
// ordering depend on this order being preserved at insert time.
func Tasks() []model.Task {
	return []model.Task{
		{
			ID:          "1",
			Title:       "Garden Maintenance",
			Description: "Need help with weeding, pruning, and general garden cleanup. About 3-4 hours of work.",
			Category:    "Gardening",
			Price:       80,
			Location:    "Springfield Village",
			PostedBy:    "Sarah Johnson",
			PostedDate:  "2024-01-20",
			Deadline:    "2024-01-25",
			Status:      constants.TaskOpen,
			Applicants:  []string{"2", "3"},
			Images:      []string{"https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=400"},
		},
		{
			ID:          "2",
			Title:       "Moving Help",
			Description: "Need 2 people to help move furniture and boxes to new apartment. Heavy lifting required.",
			Category:    "Moving",
			Price:       120,
			Location:    "Springfield Village",
			PostedBy:    "Mike Chen",
			PostedDate:  "2024-01-19",
			Deadline:    "2024-01-22",
			Status:      constants.TaskOpen,
			Applicants:  []string{"4"},
			Images:      []string{"https://images.pexels.com/photos/7464230/pexels-photo-7464230.jpeg?auto=compress&cs=tinysrgb&w=400"},
		},
		{
			ID:          "3",
			Title:       "Dog Walking",
			Description: "Looking for someone to walk my golden retriever twice a day for a week while I'm traveling.",
			Category:    "Pet Care",
			Price:       100,
			Location:    "Springfield Village",
			PostedBy:    "Emma Davis",
			PostedDate:  "2024-01-18",
			Deadline:    "2024-01-30",
			Status:      constants.TaskOpen,
			Applicants:  []string{"5", "6"},
			Images:      []string{"https://images.pexels.com/photos/1805164/pexels-photo-1805164.jpeg?auto=compress&cs=tinysrgb&w=400"},
		},
		{
			ID:          "4",
			Title:       "House Cleaning",
			Description: "Deep cleaning needed for 3-bedroom house. Kitchen, bathrooms, and living areas.",
			Category:    "Cleaning",
			Price:       150,
			Location:    "Springfield Village",
			PostedBy:    "Robert Wilson",
			PostedDate:  "2024-01-17",
			Deadline:    "2024-01-24",
			Status:      constants.TaskInProgress,
			Applicants:  []string{"7"},
			AssignedTo:  "7",
			Images:      []string{"https://images.pexels.com/photos/4239031/pexels-photo-4239031.jpeg?auto=compress&cs=tinysrgb&w=400"},
		},
		{
			ID:          "5",
			Title:       "Grocery Shopping",
			Description: "Need someone to do weekly grocery shopping. List will be provided.",
			Category:    "Shopping",
			Price:       40,
			Location:    "Springfield Village",
			PostedBy:    "Lisa Brown",
			PostedDate:  "2024-01-16",
			Deadline:    "2024-01-21",
			Status:      constants.TaskCompleted,
			Applicants:  []string{"8"},
			AssignedTo:  "8",
			Images:      []string{"https://images.pexels.com/photos/264636/pexels-photo-264636.jpeg?auto=compress&cs=tinysrgb&w=400"},
		},
		{
			ID:          "6",
			Title:       "Computer Repair",
			Description: "Laptop won't start up. Need someone with technical expertise to diagnose and fix.",
			Category:    "Technology",
			Price:       90,
			Location:    "Springfield Village",
			PostedBy:    "Tom Anderson",
			PostedDate:  "2024-01-15",
			Deadline:    "2024-01-20",
			Status:      constants.TaskOpen,
			Applicants:  []string{"9"},
			Images:      []string{"https://images.pexels.com/photos/574069/pexels-photo-574069.jpeg?auto=compress&cs=tinysrgb&w=400"},
		},
	}
}

func Applications() []model.Application {
	return []model.Application{
		{
			ID:            "1",
			TaskID:        "1",
			UserID:        "2",
			UserName:      "John Smith",
			UserRating:    4.8,
			Message:       "I have 5 years of gardening experience and can complete this task efficiently.",
			ProposedPrice: 75,
			AppliedDate:   "2024-01-21",
			Status:        constants.ApplicationPending,
			Phone:         "+1-555-0123",
		},
		{
			ID:            "2",
			TaskID:        "1",
			UserID:        "3",
			UserName:      "Maria Garcia",
			UserRating:    4.9,
			Message:       "Professional landscaper with tools. Available this weekend.",
			ProposedPrice: 80,
			AppliedDate:   "2024-01-21",
			Status:        constants.ApplicationPending,
			Phone:         "+1-555-0124",
		},
		{
			ID:            "3",
			TaskID:        "2",
			UserID:        "4",
			UserName:      "David Wilson",
			UserRating:    4.7,
			Message:       "Strong and reliable. Have helped with many moves in the area.",
			ProposedPrice: 120,
			AppliedDate:   "2024-01-20",
			Status:        constants.ApplicationPending,
			Phone:         "+1-555-0125",
		},
	}
}

func Messages() []model.Message {
	return []model.Message{
		{
			ID:         "1",
			TaskID:     "1",
			SenderID:   "1",
			SenderName: "Sarah Johnson",
			ReceiverID: "2",
			Content:    "Hi John! I saw your application. When would you be available to start?",
			Timestamp:  time.Date(2024, 1, 21, 10, 30, 0, 0, time.UTC),
			Type:       constants.MessageText,
		},
		{
			ID:         "2",
			TaskID:     "1",
			SenderID:   "2",
			SenderName: "John Smith",
			ReceiverID: "1",
			Content:    "Hello Sarah! I can start this Saturday morning. Would 8 AM work for you?",
			Timestamp:  time.Date(2024, 1, 21, 11, 15, 0, 0, time.UTC),
			Type:       constants.MessageText,
		},
	}
}

func Connections() []model.Connection {
	return []model.Connection{
		{
			ID:            "1",
			TaskID:        "4",
			WorkerID:      "7",
			WorkerName:    "Alex Thompson",
			PosterID:      "1",
			PosterName:    "Robert Wilson",
			Status:        constants.ConnectionWorking,
			ConnectedDate: "2024-01-18",
			AgreedPrice:   150,
		},
	}
}

// Seed inserts the fixture data when the task table is empty. Rows are created
// one at a time so sqlite rowids follow source order.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Task{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, task := range Tasks() {
		if err := db.Create(&task).Error; err != nil {
			return err
		}
	}
	for _, app := range Applications() {
		if err := db.Create(&app).Error; err != nil {
			return err
		}
	}
	for _, msg := range Messages() {
		if err := db.Create(&msg).Error; err != nil {
			return err
		}
	}
	for _, conn := range Connections() {
		if err := db.Create(&conn).Error; err != nil {
			return err
		}
	}

	return nil
}
