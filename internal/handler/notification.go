package handler

import (
	"net/http"

	"apparel-storefront/internal/middleware"
	"apparel-storefront/internal/notify"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	hub *notify.Hub
}

func NewNotificationHandler(hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{
		hub: hub,
	}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	sessionID := middleware.SessionID(c)

	return c.JSON(http.StatusOK, h.hub.Relay(sessionID).Active())
}

func (h *NotificationHandler) DismissNotification(c echo.Context) error {
	sessionID := middleware.SessionID(c)

	h.hub.Relay(sessionID).Dismiss(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
