package repository

import (
	"context"

	"gorm.io/gorm"

	"neighbortask.com/neighbortask/internal/constants"
	model "neighbortask.com/neighbortask/internal/models"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByTask returns a task's applications in insertion order, which is
// applied-date ascending for the seed data. No explicit sort key exists.
func (r *ApplicationRepository) ListByTask(ctx context.Context, taskID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("rowid").Find(&apps).Error
	return apps, err
}

// HasActive reports whether userID already has a non-rejected application for
// the task.
func (r *ApplicationRepository) HasActive(ctx context.Context, taskID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("task_id = ? AND user_id = ? AND status <> ?", taskID, userID, constants.ApplicationRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status constants.ApplicationStatus) error {
	return r.db.WithContext(ctx).Model(&model.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// RejectOtherPending rejects every pending application on the task except the
// accepted one.
func (r *ApplicationRepository) RejectOtherPending(ctx context.Context, taskID, acceptedID string) error {
	return r.db.WithContext(ctx).Model(&model.Application{}).
		Where("task_id = ? AND id <> ? AND status = ?", taskID, acceptedID, constants.ApplicationPending).
		Update("status", constants.ApplicationRejected).Error
}
