package dto

import "time"

type NotificationDTO struct {
	ID        string         `json:"id"`
	SenderID  uint64         `json:"sender_id"`
	Type      int8           `json:"type"`
	TargetID  uint64         `json:"target_id"`
	Content   string         `json:"content"`
	Payload   map[string]any `json:"payload,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}

type NotificationListDTO struct {
	Notifications []*NotificationDTO `json:"notifications"`
	UnreadCount   int64              `json:"unread_count"`
	HasMore       bool               `json:"has_more"`
}
