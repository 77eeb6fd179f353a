package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"neighbortask.com/neighbortask/internal/constants"
	apperrors "neighbortask.com/neighbortask/internal/errors"
	model "neighbortask.com/neighbortask/internal/models"
	"neighbortask.com/neighbortask/internal/queue"
	repository "neighbortask.com/neighbortask/internal/repositories"
)

// deliveryDelay stands in for an actual delivery round trip.
const deliveryDelay = 100 * time.Millisecond

// NotifierService records notifications and delivers them from a bounded
// worker pool. Queue capacity is guarded by tokens so the bound holds across
// restarts.
type NotifierService struct {
	queue    chan string
	wg       sync.WaitGroup
	enqueued sync.Map
	repo     *repository.NotificationRepository
	tokens   queue.TokenManager
}

func NewNotifierService(
	tokens queue.TokenManager,
	repo *repository.NotificationRepository,
	workers int,
	queueSize int,
) *NotifierService {
	n := &NotifierService{
		queue:  make(chan string, queueSize),
		repo:   repo,
		tokens: tokens,
	}

	for i := 1; i <= workers; i++ {
		n.wg.Add(1)
		go n.worker(i)
	}

	return n
}

// Notify records a notification and queues it for delivery. The row is kept
// even when the queue is full; it just stays pending.
func (n *NotifierService) Notify(ctx context.Context, recipient, kind, body string) error {
	notification := &model.Notification{
		ID:        uuid.NewString(),
		Recipient: recipient,
		Kind:      kind,
		Body:      body,
		Status:    constants.NotificationPending,
		Version:   1,
		CreatedAt: time.Now().UTC(),
	}

	if err := n.repo.Create(ctx, notification); err != nil {
		return err
	}

	if err := n.tokens.AcquireToken(ctx); err != nil {
		if errors.Is(err, queue.ErrNoTokenAvailable) {
			return apperrors.ErrNotifyQueueFull
		}
		return err
	}

	if !n.enqueue(notification.ID) {
		n.releaseToken(ctx)
		return apperrors.ErrNotifyQueueFull
	}

	return nil
}

// History lists notifications addressed to the user by id or display name.
func (n *NotifierService) History(ctx context.Context, user *model.User) ([]model.Notification, error) {
	return n.repo.ListFor(ctx, user.ID, user.Name)
}

func (n *NotifierService) enqueue(id string) bool {
	if _, loaded := n.enqueued.LoadOrStore(id, struct{}{}); loaded {
		return false
	}

	select {
	case n.queue <- id:
		return true
	default:
		n.enqueued.Delete(id)
		return false
	}
}

func (n *NotifierService) worker(workerID int) {
	defer n.wg.Done()

	log.Printf("notify worker %d started", workerID)

	for id := range n.queue {
		n.deliver(workerID, id)
	}

	log.Printf("notify worker %d stopped", workerID)
}

func (n *NotifierService) deliver(workerID int, id string) {
	ctx := context.Background()
	defer n.releaseToken(ctx)
	defer n.enqueued.Delete(id)

	notification, err := n.repo.FindByID(ctx, id)
	if err != nil {
		log.Printf("notify worker %d: notification %s not found", workerID, id)
		return
	}
	if notification.Status == constants.NotificationDelivered {
		return
	}

	n.simulateDelivery()

	deliveredAt := time.Now().UTC()
	notification.Status = constants.NotificationDelivered
	notification.DeliveredAt = &deliveredAt

	if err := n.repo.Update(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrOptimisticLock) {
			log.Printf("notify worker %d: conflict delivering %s", workerID, id)
			return
		}
		log.Printf("notify worker %d: failed to mark %s delivered: %v", workerID, id, err)
	}
}

func (n *NotifierService) simulateDelivery() {
	time.Sleep(deliveryDelay)
}

func (n *NotifierService) releaseToken(ctx context.Context) {
	if err := n.tokens.ReleaseToken(ctx); err != nil {
		log.Printf("failed to release notify queue token: %v", err)
	}
}

// Shutdown stops accepting work and waits for in-flight deliveries, up to the
// context deadline.
func (n *NotifierService) Shutdown(ctx context.Context) {
	close(n.queue)

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("notifier shut down cleanly")
	case <-ctx.Done():
		log.Println("notifier shutdown timed out")
	}
}
