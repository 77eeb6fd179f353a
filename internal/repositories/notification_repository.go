package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "neighbortask.com/neighbortask/internal/models"
)

var ErrOptimisticLock = errors.New("optimistic locking conflict")

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	var n model.Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListFor returns notifications addressed to either of the caller's handles
// (user id or display name).
func (r *NotificationRepository) ListFor(ctx context.Context, userID, userName string) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).
		Where("recipient IN ?", []string{userID, userName}).
		Order("created_at desc").Find(&ns).Error
	return ns, err
}

// Update writes the notification back under a version check. A delivery worker
// losing the race gets ErrOptimisticLock and leaves the row alone.
func (r *NotificationRepository) Update(ctx context.Context, n *model.Notification) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND version = ?", n.ID, n.Version).
		Updates(map[string]interface{}{
			"status":       n.Status,
			"delivered_at": n.DeliveredAt,
			"version":      gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	n.Version++
	return nil
}
