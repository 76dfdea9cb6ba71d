package kafka

import (
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/mongo"
	"bemusicshare/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	redisv9 "github.com/redis/go-redis/v9"
)

type FollowsHandler struct {
	notifRepo mongo.NotificationRepo
}

func NewFollowsHandler(notifRepo mongo.NotificationRepo) *FollowsHandler {
	return &FollowsHandler{notifRepo: notifRepo}
}

func (s *FollowsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("user follows consumer setup")
	return nil
}

func (s *FollowsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("user follows consumer cleanup")
	return nil
}

func (s *FollowsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-user-follows consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-user-follows process batch error", "err", err)
		return err
	}
	return nil
}

func (s *FollowsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "user_follows")
	if err != nil || canalMsg == nil {
		return nil
	}

	rdb := redis.GetRdbClient()
	pipe := rdb.Pipeline()
	var affectedUIDs []interface{}

	for _, row := range canalMsg.Data {
		followerID := StrToUint64(row["follower_id"])
		followingID := StrToUint64(row["following_id"])
		affectedUIDs = append(affectedUIDs, followerID, followingID)

		fdrKey := consts.UserFollowerKey + strconv.FormatUint(followingID, 10)
		fngKey := consts.UserFollowingKey + strconv.FormatUint(followerID, 10)
		fdrCountKey := consts.UserFollowerCountKey + strconv.FormatUint(followingID, 10)
		fngCountKey := consts.UserFollowingCountKey + strconv.FormatUint(followerID, 10)

		if canalMsg.Type == INSERT {
			now := float64(time.Now().Unix())
			pipe.ZAdd(ctx, fdrKey, redisv9.Z{Score: now, Member: followerID})
			pipe.ZRemRangeByRank(ctx, fdrKey, 0, -1001)
			pipe.ZAdd(ctx, fngKey, redisv9.Z{Score: now, Member: followingID})
			pipe.ZRemRangeByRank(ctx, fngKey, 0, -1001)
			pipe.Incr(ctx, fdrCountKey)
			pipe.Incr(ctx, fngCountKey)

			s.sendFollowNotification(ctx, followerID, followingID)
		} else if canalMsg.Type == DELETE {
			pipe.ZRem(ctx, fdrKey, followerID)
			pipe.ZRem(ctx, fngKey, followingID)
			pipe.Decr(ctx, fdrCountKey)
			pipe.Decr(ctx, fngCountKey)
		}
	}

	if len(affectedUIDs) > 0 {
		pipe.SAdd(ctx, consts.UserFollowDirtyKey, affectedUIDs...)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		log.Error("Redis Pipeline Exec failed", "err", err, "msg_key", string(msg.Key))
		return err
	}
	return nil
}

// sendFollowNotification 关注通知
func (s *FollowsHandler) sendFollowNotification(ctx context.Context, followerID, followingID uint64) {
	if followerID == followingID {
		return
	}

	notification := &mongo.NotificationModel{
		ReceiverID: followingID,
		SenderID:   followerID,
		Type:       mongo.NotifyTypeFollow,
		TargetID:   followerID,
		Content:    "关注了你",
		IsRead:     false,
		CreatedAt:  time.Now(),
	}

	if err := s.notifRepo.CreateNotification(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create follow notification", "followerID", followerID, "err", err)
	}
}
