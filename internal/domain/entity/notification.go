// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationKind classifies a transient user-facing notification.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationWarning NotificationKind = "warning"
	NotificationInfo    NotificationKind = "info"
)

// Valid reports whether the kind is one of the four known values.
func (k NotificationKind) Valid() bool {
	switch k {
	case NotificationSuccess, NotificationError, NotificationWarning, NotificationInfo:
		return true
	}

	return false
}

// Notification is a transient user-facing message. It auto-expires a fixed
// interval after creation regardless of user interaction.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
