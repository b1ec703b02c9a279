package usecase

import "campus/internal/domain/entity"

// NotificationUsecase defines the transient in-app notification queue.
// Entries expire on their own after the configured lifetime.
type NotificationUsecase interface {
	// Push enqueues a notification and schedules its expiry. Unknown kinds
	// are coerced to info.
	Push(kind entity.NotificationKind, message string) entity.Notification

	// Active returns the not-yet-expired notifications, oldest first.
	Active() []entity.Notification

	// Dismiss removes a notification before its lifetime elapses.
	// Dismissing an already-expired id is a no-op.
	Dismiss(id string)
}
