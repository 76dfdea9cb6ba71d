package handler

import (
	"bemusicshare/internal/pkg/response"
	"bemusicshare/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifSvc service.NotificationService
}

func NewNotificationHandler(notifSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifSvc: notifSvc}
}

func (s *NotificationHandler) ListNotifications(c *gin.Context) {
	userId := c.GetUint64("user_id")
	page, pageSize := getPagination(c)

	list, err := s.notifSvc.ListNotifications(c.Request.Context(), userId, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *NotificationHandler) MarkAsRead(c *gin.Context) {
	userId := c.GetUint64("user_id")
	notificationId := c.Param("notification_id")
	if notificationId == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.notifSvc.MarkAsRead(c.Request.Context(), userId, notificationId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userId := c.GetUint64("user_id")
	if err := s.notifSvc.MarkAllAsRead(c.Request.Context(), userId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
