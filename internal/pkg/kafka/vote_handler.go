package kafka

import (
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/mongo"
	"bemusicshare/internal/pkg/redis"
	"bemusicshare/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

type VotesHandler struct {
	postRepo  repository.PostRepo
	notifRepo mongo.NotificationRepo
}

func NewVotesHandler(postRepo repository.PostRepo, notifRepo mongo.NotificationRepo) *VotesHandler {
	return &VotesHandler{
		postRepo:  postRepo,
		notifRepo: notifRepo,
	}
}

func (s *VotesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("votes consumer setup")
	return nil
}

func (s *VotesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("votes consumer cleanup")
	return nil
}

func (s *VotesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-votes consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-votes process batch error", "err", err)
		return err
	}
	return nil
}

func (s *VotesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "votes")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case UPDATE:
		return s.handleUpdate(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

// handleInsert 新票：对应票型计数 +1，顶票发通知
func (s *VotesHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]
	userID, postID := StrToUint64(row["user_id"]), StrToUint64(row["post_id"])
	voteType := StrField(row, "vote_type")

	params := ActionParams{
		TargetID:       postID,
		CountKeyPrefix: countKeyFor(voteType),
		DirtyKey:       consts.PostDirtyKey,
		Delta:          1,
	}
	if voteType == consts.VoteUp {
		params.NotifyFunc = func() { s.sendUpvoteNotification(ctx, userID, postID) }
	}
	ExecAction(ctx, params)

	log.InfoContext(ctx, "vote inserted", "userID", userID, "postID", postID, "voteType", voteType)
	return nil
}

// handleUpdate 改票：旧票型 -1，新票型 +1
func (s *VotesHandler) handleUpdate(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]
	postID := StrToUint64(row["post_id"])
	newType := StrField(row, "vote_type")

	oldType := ""
	if len(msg.Old) > 0 {
		oldType = StrField(msg.Old[0], "vote_type")
	}
	if oldType == "" || oldType == newType {
		return nil
	}

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: countKeyFor(oldType),
		Delta:          -1,
	})
	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: countKeyFor(newType),
		DirtyKey:       consts.PostDirtyKey,
		Delta:          1,
	})

	log.InfoContext(ctx, "vote changed", "postID", postID, "from", oldType, "to", newType)
	return nil
}

// handleDelete 撤票：对应票型计数 -1
func (s *VotesHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]
	postID := StrToUint64(row["post_id"])
	voteType := StrField(row, "vote_type")

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: countKeyFor(voteType),
		DirtyKey:       consts.PostDirtyKey,
		Delta:          -1,
	})

	log.InfoContext(ctx, "vote removed", "postID", postID, "voteType", voteType)
	return nil
}

// sendUpvoteNotification 顶票通知，不通知自己，短期内重复顶同一帖只通知一次
func (s *VotesHandler) sendUpvoteNotification(ctx context.Context, senderID, postID uint64) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil || post == nil {
		log.WarnContext(ctx, "failed to get post for notification", "postID", postID)
		return
	}

	if post.UserID == senderID {
		return
	}

	lockKey := fmt.Sprintf("%s%d:%d", consts.VoteNotifyLock, senderID, postID)
	ok, err := redis.TryLock(ctx, lockKey, 1, 24*time.Hour, 1)
	if err != nil || !ok {
		return
	}

	notification := &mongo.NotificationModel{
		ReceiverID: post.UserID,
		SenderID:   senderID,
		Type:       mongo.NotifyTypeUpvote,
		TargetID:   postID,
		Content:    "顶了你的推荐",
		Payload: map[string]any{
			"song_title": post.Song.Title,
		},
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.notifRepo.CreateNotification(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create upvote notification", "postID", postID, "err", err)
	}
}

func countKeyFor(voteType string) string {
	if voteType == consts.VoteDown {
		return consts.PostDownvoteKey
	}
	return consts.PostUpvoteKey
}
