package handler

import (
	"log/slog"
	"net/http"

	"campus/internal/delivery/http/response"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// List handles retrieving the active notification queue
func (h *NotificationHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.notificationUC.Active())
}

// Dismiss handles removing a notification before it expires
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	h.notificationUC.Dismiss(c.Param("id"))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Dismissed"})
}
