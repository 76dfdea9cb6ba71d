package kafka

import (
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/mongo"
	"bemusicshare/internal/repository"
	"context"
	log "log/slog"
	"time"
	"unicode/utf8"

	"github.com/IBM/sarama"
)

const commentPreviewLimit = 50

type CommentsHandler struct {
	postRepo  repository.PostRepo
	notifRepo mongo.NotificationRepo
}

func NewCommentsHandler(postRepo repository.PostRepo, notifRepo mongo.NotificationRepo) *CommentsHandler {
	return &CommentsHandler{
		postRepo:  postRepo,
		notifRepo: notifRepo,
	}
}

func (s *CommentsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("comments consumer setup")
	return nil
}

func (s *CommentsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("comments consumer cleanup")
	return nil
}

func (s *CommentsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-comments consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-comments process batch error", "err", err)
		return err
	}
	return nil
}

func (s *CommentsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "comments")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

// handleInsert 新评论：缓存计数 +1 并通知帖主
func (s *CommentsHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]
	commentID := StrToUint64(row["id"])
	userID, postID := StrToUint64(row["user_id"]), StrToUint64(row["post_id"])
	content := StrField(row, "content")

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostCommentKey,
		DirtyKey:       consts.PostDirtyKey,
		Delta:          1,
		NotifyFunc: func() {
			s.sendCommentNotification(ctx, userID, postID, commentID, content)
		},
	})

	log.InfoContext(ctx, "comment inserted", "userID", userID, "postID", postID)
	return nil
}

// handleDelete 评论删除：缓存计数 -1
func (s *CommentsHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	postID := StrToUint64(msg.Data[0]["post_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostCommentKey,
		DirtyKey:       consts.PostDirtyKey,
		Delta:          -1,
	})

	log.InfoContext(ctx, "comment deleted", "postID", postID)
	return nil
}

// sendCommentNotification 评论通知，带正文片段，不通知自己
func (s *CommentsHandler) sendCommentNotification(ctx context.Context, senderID, postID, commentID uint64, content string) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil || post == nil {
		log.WarnContext(ctx, "failed to get post for notification", "postID", postID)
		return
	}

	if post.UserID == senderID {
		return
	}

	notification := &mongo.NotificationModel{
		ReceiverID: post.UserID,
		SenderID:   senderID,
		Type:       mongo.NotifyTypeComment,
		TargetID:   postID,
		Content:    truncateRunes(content, commentPreviewLimit),
		Payload: map[string]any{
			"comment_id": commentID,
			"song_title": post.Song.Title,
		},
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.notifRepo.CreateNotification(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create comment notification", "postID", postID, "err", err)
	}
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
