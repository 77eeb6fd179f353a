package repository

import (
	"context"

	"gorm.io/gorm"

	model "neighbortask.com/neighbortask/internal/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message. Messages are never updated afterwards.
func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *MessageRepository) ListByTask(ctx context.Context, taskID string) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("timestamp asc").Find(&msgs).Error
	return msgs, err
}
