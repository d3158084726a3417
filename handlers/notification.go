package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/models"
	"nexus/services/notification"
	"nexus/services/session"
	"nexus/utils"
)

type NotificationHandler struct {
	Notifier notification.NotificationService
	Sessions session.SessionService
}

func NewNotificationHandler(notifier notification.NotificationService, sessions session.SessionService) *NotificationHandler {
	return &NotificationHandler{Notifier: notifier, Sessions: sessions}
}

// roleFromRequest prefers an explicit role query, falling back to the
// session's active role.
func (h *NotificationHandler) roleFromRequest(c *gin.Context) models.Role {
	if r := models.Role(c.Query("role")); r.Valid() {
		return r
	}
	return h.Sessions.Role(c.Request.Context())
}

func (h *NotificationHandler) List(c *gin.Context) {
	role := h.roleFromRequest(c)
	notifications, err := h.Notifier.ListByRole(c.Request.Context(), role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	role := h.roleFromRequest(c)
	count, err := h.Notifier.UnreadCount(c.Request.Context(), role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to count notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Notifier.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "notification not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	role := h.roleFromRequest(c)
	if err := h.Notifier.MarkAllRead(c.Request.Context(), role); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}
