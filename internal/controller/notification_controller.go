package controller

import (
	"mindscreen_backend/internal/service"
	"mindscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *service.NotificationService
}

func NewNotificationController(notifications *service.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// List godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/v1/notifications [get]
func (ctl *NotificationController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)

	ns, total, err := ctl.Notifications.ListForUser(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: ns, Total: total, Page: page, Limit: limit})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} util.Response
// @Router /api/v1/notifications/{id}/read [post]
func (ctl *NotificationController) MarkRead(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	if err := ctl.Notifications.MarkRead(c.Param("id"), claims.UserID); err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, nil)
}

// UnreadCount godoc
// @Summary Count the caller's unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/v1/notifications/unread-count [get]
func (ctl *NotificationController) UnreadCount(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	n, err := ctl.Notifications.UnreadCount(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"unread": n})
}
