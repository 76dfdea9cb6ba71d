package service

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/pkg/mongo"
	"context"
	"errors"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type NotificationService interface {
	ListNotifications(ctx context.Context, userID uint64, page, pageSize int) (*dto.NotificationListDTO, error)
	MarkAsRead(ctx context.Context, userID uint64, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
}

type NotificationServiceImpl struct {
	notifRepo mongo.NotificationRepo
}

func NewNotificationService(notifRepo mongo.NotificationRepo) NotificationService {
	return &NotificationServiceImpl{notifRepo: notifRepo}
}

func (s *NotificationServiceImpl) ListNotifications(ctx context.Context, userID uint64, page, pageSize int) (*dto.NotificationListDTO, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := int64((page - 1) * pageSize)

	items, err := s.notifRepo.GetNotificationList(ctx, userID, int64(pageSize)+1, offset)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(items) > pageSize {
		hasMore = true
		items = items[:pageSize]
	}

	unread, err := s.notifRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.NotificationDTO, 0, len(items))
	for _, item := range items {
		list = append(list, &dto.NotificationDTO{
			ID:        item.ID.Hex(),
			SenderID:  item.SenderID,
			Type:      item.Type,
			TargetID:  item.TargetID,
			Content:   item.Content,
			Payload:   item.Payload,
			IsRead:    item.IsRead,
			CreatedAt: item.CreatedAt,
		})
	}

	return &dto.NotificationListDTO{
		Notifications: list,
		UnreadCount:   unread,
		HasMore:       hasMore,
	}, nil
}

func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, userID uint64, notificationID string) error {
	err := s.notifRepo.MarkAsRead(ctx, userID, notificationID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) || errors.Is(err, mongodriver.ErrInvalidIndexValue) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}
