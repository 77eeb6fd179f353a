package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"neighbortask.com/neighbortask/internal/constants"
	apperrors "neighbortask.com/neighbortask/internal/errors"
	model "neighbortask.com/neighbortask/internal/models"
	repository "neighbortask.com/neighbortask/internal/repositories"
)

func newTestConnectionService(t *testing.T) (*ConnectionService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewConnectionService(repository.NewConnectionRepository(db), repository.NewTaskRepository(db))
	return svc, db
}

func TestConnectionService_ListForWorker(t *testing.T) {
	svc, _ := newTestConnectionService(t)

	views, err := svc.ListForUser(context.Background(), &model.User{ID: "7", Name: "Alex Thompson"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(views) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(views))
	}
	view := views[0]
	if view.Role != RoleWorker {
		t.Errorf("expected role %q, got %q", RoleWorker, view.Role)
	}
	if view.Counterpart != "Robert Wilson" {
		t.Errorf("expected counterpart Robert Wilson, got %q", view.Counterpart)
	}
	if view.Task.ID != "4" || view.Task.Title != "House Cleaning" {
		t.Errorf("unexpected task: %s %q", view.Task.ID, view.Task.Title)
	}
}

func TestConnectionService_ListForPoster(t *testing.T) {
	svc, _ := newTestConnectionService(t)

	views, err := svc.ListForUser(context.Background(), &model.User{ID: "1", Name: "Robert Wilson"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(views) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(views))
	}
	if views[0].Role != RoleTaskPoster {
		t.Errorf("expected role %q, got %q", RoleTaskPoster, views[0].Role)
	}
	if views[0].Counterpart != "Alex Thompson" {
		t.Errorf("expected counterpart Alex Thompson, got %q", views[0].Counterpart)
	}
}

func TestConnectionService_ListDropsMissingTask(t *testing.T) {
	svc, db := newTestConnectionService(t)
	ctx := context.Background()

	dangling := &model.Connection{
		ID:            "2",
		TaskID:        "999",
		WorkerID:      "7",
		WorkerName:    "Alex Thompson",
		PosterID:      "10",
		PosterName:    "Nobody",
		Status:        constants.ConnectionWorking,
		ConnectedDate: "2024-01-19",
		AgreedPrice:   50,
	}
	if err := db.Create(dangling).Error; err != nil {
		t.Fatalf("create dangling connection: %v", err)
	}

	views, err := svc.ListForUser(ctx, &model.User{ID: "7", Name: "Alex Thompson"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected the dangling connection dropped, got %d views", len(views))
	}
	if views[0].Connection.ID != "1" {
		t.Errorf("expected connection 1 to survive, got %s", views[0].Connection.ID)
	}
}

func TestConnectionService_Complete(t *testing.T) {
	svc, db := newTestConnectionService(t)
	ctx := context.Background()
	worker := &model.User{ID: "7", Name: "Alex Thompson"}

	conn, err := svc.Complete(ctx, worker, "1")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if conn.Status != constants.ConnectionCompleted {
		t.Errorf("expected completed connection, got %s", conn.Status)
	}

	var task model.Task
	if err := db.First(&task, "id = ?", "4").Error; err != nil {
		t.Fatalf("load task: %v", err)
	}
	if task.Status != constants.TaskCompleted {
		t.Errorf("expected task completed, got %s", task.Status)
	}
	if task.AssignedTo != "7" {
		t.Errorf("expected assignedTo 7, got %q", task.AssignedTo)
	}

	if _, err := svc.Complete(ctx, worker, "1"); err != apperrors.ErrConnectionNotActive {
		t.Errorf("expected ErrConnectionNotActive on second completion, got %v", err)
	}
}

func TestConnectionService_CompleteRequiresParticipant(t *testing.T) {
	svc, _ := newTestConnectionService(t)

	outsider := &model.User{ID: "99", Name: "Stranger"}
	if _, err := svc.Complete(context.Background(), outsider, "1"); err != apperrors.ErrNotParticipant {
		t.Errorf("expected ErrNotParticipant, got %v", err)
	}

	if _, err := svc.Complete(context.Background(), outsider, "404"); err != apperrors.ErrConnectionNotFound {
		t.Errorf("expected ErrConnectionNotFound, got %v", err)
	}
}
