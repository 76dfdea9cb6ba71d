package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 通知类型
const (
	NotifyTypeUpvote  int8 = 1 // 帖子被顶
	NotifyTypeComment int8 = 2 // 帖子被评论
	NotifyTypeFollow  int8 = 3 // 被关注
)

// NotificationModel 站内通知模型
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"` // 通知接收者ID
	SenderID   uint64             `bson:"sender_id" json:"senderId"`     // 动作发起者ID
	Type       int8               `bson:"type" json:"type"`              // 通知类型
	TargetID   uint64             `bson:"target_id" json:"targetId"`     // 关联的目标ID (如帖子ID)
	Content    string             `bson:"content" json:"content"`        // 文案预览或评论片段
	Payload    map[string]any     `bson:"payload" json:"payload"`        // 额外元数据 (如歌曲标题快照)
	IsRead     bool               `bson:"is_read" json:"isRead"`         // 是否已读
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`   // 创建时间
}
