package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"neighbortask.com/neighbortask/internal/constants"
	model "neighbortask.com/neighbortask/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns every task in insertion (source) order.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("rowid").Find(&tasks).Error
	return tasks, err
}

// Filter applies the three browse predicates conjunctively. Empty search and
// the "All Categories"/"all" sentinels each degrade to match-all. Insertion
// order is preserved.
func (r *TaskRepository) Filter(ctx context.Context, search, category, status string) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})

	if category != "" && category != constants.AllCategories {
		q = q.Where("category = ?", category)
	}
	if status != "" && status != constants.TaskStatusAll {
		q = q.Where("status = ?", status)
	}

	var tasks []model.Task
	if err := q.Order("rowid").Find(&tasks).Error; err != nil {
		return nil, err
	}

	if search == "" {
		return tasks, nil
	}

	// The search term is a literal substring, so % and _ carry no wildcard
	// meaning. A sqlite LIKE would treat them as patterns, and its lower()
	// folds ASCII only; both checks happen in memory instead.
	needle := strings.ToLower(search)
	matched := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

func (r *TaskRepository) ListByPoster(ctx context.Context, posterName string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("posted_by = ?", posterName).
		Order("rowid").Find(&tasks).Error
	return tasks, err
}

// ListByApplicant returns tasks whose applicant list contains userID. The list
// is a JSON blob in sqlite, so membership is checked in memory.
func (r *TaskRepository) ListByApplicant(ctx context.Context, userID string) ([]model.Task, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	for _, task := range all {
		if task.HasApplicant(userID) {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}
