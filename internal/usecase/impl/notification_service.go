package impl

import (
	"sync"
	"time"

	"campus/internal/domain/entity"
	"campus/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	queue []entity.Notification
}

// NewNotificationUsecase creates a new notification usecase instance.
// Entries live for ttl after creation and then drop out of the queue on
// their own.
func NewNotificationUsecase(ttl time.Duration) usecase.NotificationUsecase {
	return &notificationService{
		ttl: ttl,
		now: time.Now,
	}
}

// Push enqueues a notification and schedules its expiry.
func (s *notificationService) Push(kind entity.NotificationKind, message string) entity.Notification {
	if !kind.Valid() {
		kind = entity.NotificationInfo
	}

	notification := entity.Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.queue = append(s.queue, notification)
	s.mu.Unlock()

	time.AfterFunc(s.ttl, func() {
		s.Dismiss(notification.ID)
	})

	return notification
}

// Active returns the not-yet-expired notifications, oldest first.
func (s *notificationService) Active() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]entity.Notification(nil), s.queue...)
}

// Dismiss removes a notification by id. Unknown ids are ignored.
func (s *notificationService) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, notification := range s.queue {
		if notification.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}
