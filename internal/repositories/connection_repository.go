package repository

import (
	"context"

	"gorm.io/gorm"

	"neighbortask.com/neighbortask/internal/constants"
	model "neighbortask.com/neighbortask/internal/models"
)

type ConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

func (r *ConnectionRepository) Create(ctx context.Context, conn *model.Connection) error {
	return r.db.WithContext(ctx).Create(conn).Error
}

func (r *ConnectionRepository) FindByID(ctx context.Context, id string) (*model.Connection, error) {
	var conn model.Connection
	err := r.db.WithContext(ctx).First(&conn, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

// ListByParticipant returns connections where userID is worker or poster.
func (r *ConnectionRepository) ListByParticipant(ctx context.Context, userID string) ([]model.Connection, error) {
	var conns []model.Connection
	err := r.db.WithContext(ctx).
		Where("worker_id = ? OR poster_id = ?", userID, userID).
		Order("rowid").Find(&conns).Error
	return conns, err
}

func (r *ConnectionRepository) UpdateStatus(ctx context.Context, id string, status constants.ConnectionStatus) error {
	return r.db.WithContext(ctx).Model(&model.Connection{}).
		Where("id = ?", id).
		Update("status", status).Error
}
