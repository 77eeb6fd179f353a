package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"neighbortask.com/neighbortask/internal/constants"
	apperrors "neighbortask.com/neighbortask/internal/errors"
	model "neighbortask.com/neighbortask/internal/models"
	repository "neighbortask.com/neighbortask/internal/repositories"
)

// Notifier dispatches an async notification. recipient is a user id or, for
// task posters, a display name. Delivery failures never fail the triggering
// operation.
type Notifier interface {
	Notify(ctx context.Context, recipient, kind, body string) error
}

type TaskService struct {
	tasks    *repository.TaskRepository
	apps     *repository.ApplicationRepository
	conns    *repository.ConnectionRepository
	notifier Notifier
}

func NewTaskService(
	tasks *repository.TaskRepository,
	apps *repository.ApplicationRepository,
	conns *repository.ConnectionRepository,
	notifier Notifier,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		apps:     apps,
		conns:    conns,
		notifier: notifier,
	}
}

// Browse returns the tasks matching all three filter predicates, in source
// order. Empty inputs and the sentinels match everything.
func (s *TaskService) Browse(ctx context.Context, search, category, status string) ([]model.Task, error) {
	return s.tasks.Filter(ctx, search, category, status)
}

type PostTaskInput struct {
	Title       string
	Description string
	Category    string
	Price       int
	Deadline    string
	Location    string
	Images      []string
}

// Post creates an open task on behalf of the poster. Input is assumed
// boundary-validated; there is no second validation pass here.
func (s *TaskService) Post(ctx context.Context, poster *model.User, in PostTaskInput) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Location:    in.Location,
		PostedBy:    poster.Name,
		PostedDate:  time.Now().Format("2006-01-02"),
		Deadline:    in.Deadline,
		Status:      constants.TaskOpen,
		Applicants:  []string{},
		Images:      in.Images,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Details returns a task with its applications in insertion order.
func (s *TaskService) Details(ctx context.Context, taskID string) (*model.Task, []model.Application, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, nil, apperrors.ErrTaskNotFound
	}

	apps, err := s.apps.ListByTask(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	return task, apps, nil
}

type ApplyInput struct {
	Message       string
	ProposedPrice int
	Phone         string
}

// Apply submits a bid on an open task. A user keeps at most one non-rejected
// application per task and cannot bid on their own post.
func (s *TaskService) Apply(ctx context.Context, applicant *model.User, taskID string, in ApplyInput) (*model.Application, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, apperrors.ErrTaskNotFound
	}

	if task.Status != constants.TaskOpen {
		return nil, apperrors.ErrTaskNotOpen
	}
	if task.PostedBy == applicant.Name {
		return nil, apperrors.ErrOwnTaskApplication
	}

	active, err := s.apps.HasActive(ctx, taskID, applicant.ID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &model.Application{
		ID:            uuid.NewString(),
		TaskID:        taskID,
		UserID:        applicant.ID,
		UserName:      applicant.Name,
		UserRating:    applicant.Rating,
		Message:       in.Message,
		ProposedPrice: in.ProposedPrice,
		AppliedDate:   time.Now().Format("2006-01-02"),
		Status:        constants.ApplicationPending,
		Phone:         in.Phone,
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}

	if !task.HasApplicant(applicant.ID) {
		task.Applicants = append(task.Applicants, applicant.ID)
		if err := s.tasks.Save(ctx, task); err != nil {
			return nil, err
		}
	}

	if err := s.notifier.Notify(ctx, task.PostedBy, "application_received",
		applicant.Name+" applied to \""+task.Title+"\""); err != nil {
		log.Printf("notify application on task %s: %v", task.ID, err)
	}

	return app, nil
}

// Accept marks an application accepted on behalf of the task poster, rejects
// the task's other pending applications, assigns the task, and records the
// resulting connection at the proposed price.
func (s *TaskService) Accept(ctx context.Context, caller *model.User, applicationID string) (*model.Connection, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, apperrors.ErrApplicationNotFound
	}

	task, err := s.tasks.FindByID(ctx, app.TaskID)
	if err != nil {
		return nil, apperrors.ErrTaskNotFound
	}

	if task.PostedBy != caller.Name {
		return nil, apperrors.ErrNotTaskOwner
	}
	if task.Status != constants.TaskOpen {
		return nil, apperrors.ErrTaskNotOpen
	}
	if app.UserID == caller.ID {
		return nil, apperrors.ErrOwnTaskApplication
	}
	if !task.HasApplicant(app.UserID) {
		// assignedTo must come from the applicant list.
		return nil, apperrors.ErrApplicationNotFound
	}

	if err := s.apps.UpdateStatus(ctx, app.ID, constants.ApplicationAccepted); err != nil {
		return nil, err
	}
	if err := s.apps.RejectOtherPending(ctx, task.ID, app.ID); err != nil {
		return nil, err
	}

	task.Status = constants.TaskInProgress
	task.AssignedTo = app.UserID
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	conn := &model.Connection{
		ID:            uuid.NewString(),
		TaskID:        task.ID,
		WorkerID:      app.UserID,
		WorkerName:    app.UserName,
		PosterID:      caller.ID,
		PosterName:    caller.Name,
		Status:        constants.ConnectionConnected,
		ConnectedDate: time.Now().Format("2006-01-02"),
		AgreedPrice:   app.ProposedPrice,
	}
	if err := s.conns.Create(ctx, conn); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, app.UserID, "application_accepted",
		"Your application for \""+task.Title+"\" was accepted"); err != nil {
		log.Printf("notify acceptance of %s: %v", app.ID, err)
	}

	return conn, nil
}

// ProfileTasks partitions tasks into those the user posted (display-name
// match) and those the user applied to (id present in applicants).
func (s *TaskService) ProfileTasks(ctx context.Context, user *model.User) (posted, applied []model.Task, err error) {
	posted, err = s.tasks.ListByPoster(ctx, user.Name)
	if err != nil {
		return nil, nil, err
	}

	applied, err = s.tasks.ListByApplicant(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	// An empty partition is still a list, not null, on the wire.
	if posted == nil {
		posted = []model.Task{}
	}
	if applied == nil {
		applied = []model.Task{}
	}
	return posted, applied, nil
}
