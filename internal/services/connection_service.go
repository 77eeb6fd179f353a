package services

import (
	"context"
	"log"

	"neighbortask.com/neighbortask/internal/constants"
	apperrors "neighbortask.com/neighbortask/internal/errors"
	model "neighbortask.com/neighbortask/internal/models"
	repository "neighbortask.com/neighbortask/internal/repositories"
)

const (
	RoleWorker     = "Worker"
	RoleTaskPoster = "Task Poster"
)

// ConnectionView is a connection resolved for one side: its task, the
// counterpart's display name, and the caller's role label.
type ConnectionView struct {
	Connection  model.Connection `json:"connection"`
	Task        model.Task       `json:"task"`
	Counterpart string           `json:"counterpart"`
	Role        string           `json:"role"`
}

type ConnectionService struct {
	conns *repository.ConnectionRepository
	tasks *repository.TaskRepository
}

func NewConnectionService(conns *repository.ConnectionRepository, tasks *repository.TaskRepository) *ConnectionService {
	return &ConnectionService{
		conns: conns,
		tasks: tasks,
	}
}

// ListForUser returns the caller's connections resolved into views. A
// connection whose task no longer resolves is dropped from the result, not
// reported.
func (s *ConnectionService) ListForUser(ctx context.Context, user *model.User) ([]ConnectionView, error) {
	conns, err := s.conns.ListByParticipant(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]ConnectionView, 0, len(conns))
	for _, conn := range conns {
		task, err := s.tasks.FindByID(ctx, conn.TaskID)
		if err != nil {
			log.Printf("connection %s references missing task %s, dropped", conn.ID, conn.TaskID)
			continue
		}

		view := ConnectionView{
			Connection: conn,
			Task:       *task,
		}
		if conn.WorkerID == user.ID {
			view.Role = RoleWorker
			view.Counterpart = conn.PosterName
		} else {
			view.Role = RoleTaskPoster
			view.Counterpart = conn.WorkerName
		}
		views = append(views, view)
	}

	return views, nil
}

// Complete finishes a connection on behalf of a participant. The task follows:
// it becomes completed, and its assignedTo is necessarily already set.
func (s *ConnectionService) Complete(ctx context.Context, user *model.User, connectionID string) (*model.Connection, error) {
	conn, err := s.conns.FindByID(ctx, connectionID)
	if err != nil {
		return nil, apperrors.ErrConnectionNotFound
	}

	if !conn.Involves(user.ID) {
		return nil, apperrors.ErrNotParticipant
	}
	if conn.Status == constants.ConnectionCompleted {
		return nil, apperrors.ErrConnectionNotActive
	}

	if err := s.conns.UpdateStatus(ctx, conn.ID, constants.ConnectionCompleted); err != nil {
		return nil, err
	}
	conn.Status = constants.ConnectionCompleted

	task, err := s.tasks.FindByID(ctx, conn.TaskID)
	if err != nil {
		// Completion of the connection itself stands even when the task
		// reference is dangling.
		log.Printf("completed connection %s references missing task %s", conn.ID, conn.TaskID)
		return conn, nil
	}

	task.Status = constants.TaskCompleted
	if task.AssignedTo == "" {
		task.AssignedTo = conn.WorkerID
	}
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	return conn, nil
}
