package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"neighbortask.com/neighbortask/internal/constants"
	apperrors "neighbortask.com/neighbortask/internal/errors"
	model "neighbortask.com/neighbortask/internal/models"
	repository "neighbortask.com/neighbortask/internal/repositories"
)

// PhonePlaceholder is embedded in a contact share when the sender has no
// phone number on file.
const PhonePlaceholder = "Phone number not provided"

type MessageService struct {
	msgs  *repository.MessageRepository
	tasks *repository.TaskRepository
}

func NewMessageService(msgs *repository.MessageRepository, tasks *repository.TaskRepository) *MessageService {
	return &MessageService{
		msgs:  msgs,
		tasks: tasks,
	}
}

// Thread returns the task's messages in ascending timestamp order.
func (s *MessageService) Thread(ctx context.Context, taskID string) ([]model.Message, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, apperrors.ErrTaskNotFound
	}
	return s.msgs.ListByTask(ctx, taskID)
}

// Send appends a text message to the task's thread. Whitespace-only content is
// a no-op: the thread is left unchanged and no message is returned.
func (s *MessageService) Send(ctx context.Context, sender *model.User, taskID, receiverID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, apperrors.ErrTaskNotFound
	}

	msg := &model.Message{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		Type:       constants.MessageText,
	}

	if err := s.msgs.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ShareContact appends a contact_share message embedding the sender's phone
// number, or the placeholder when none is set.
func (s *MessageService) ShareContact(ctx context.Context, sender *model.User, taskID, receiverID string) (*model.Message, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, apperrors.ErrTaskNotFound
	}

	phone := sender.Phone
	if phone == "" {
		phone = PhonePlaceholder
	}

	msg := &model.Message{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		ReceiverID: receiverID,
		Content:    "Contact me: " + phone,
		Timestamp:  time.Now().UTC(),
		Type:       constants.MessageContactShare,
	}

	if err := s.msgs.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
