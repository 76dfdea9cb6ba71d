package kafka

import (
	"bemusicshare/internal/pkg/es"
	"bemusicshare/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

type PostsHandler struct {
	postRepo   repository.PostRepo
	postESRepo es.PostRepo
}

func NewPostsHandler(postRepo repository.PostRepo, postESRepo es.PostRepo) *PostsHandler {
	return &PostsHandler{
		postRepo:   postRepo,
		postESRepo: postESRepo,
	}
}

func (s *PostsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("posts consumer setup")
	return nil
}

func (s *PostsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("posts consumer cleanup")
	return nil
}

func (s *PostsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-posts consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-posts process batch error", "err", err)
		return err
	}
	return nil
}

func (s *PostsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "posts")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT, UPDATE:
		return s.indexPost(ctx, canalMsg)
	case DELETE:
		postID := StrToUint64(canalMsg.Data[0]["id"])
		return s.postESRepo.DeletePost(ctx, postID)
	default:
		return nil
	}
}

// indexPost 回源数据库组装完整文档写入 ES，
// Canal 的执行时间戳作为外部版本号挡掉乱序写入
func (s *PostsHandler) indexPost(ctx context.Context, msg *CanalMessage) error {
	postID := StrToUint64(msg.Data[0]["id"])

	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		// 回源时帖子已被删，按删除处理
		return s.postESRepo.DeletePost(ctx, postID)
	}

	tags := make([]string, 0, len(post.Tags))
	for _, t := range post.Tags {
		tags = append(tags, t.Tag)
	}

	doc := &es.PostES{
		ID:             post.ID,
		UserID:         post.UserID,
		SongID:         post.SongID,
		Content:        post.Content,
		SongTitle:      post.Song.Title,
		Genre:          post.Song.Genre,
		Tags:           tags,
		UserNickname:   post.User.Nickname,
		UpvotesCount:   post.UpvotesCount,
		DownvotesCount: post.DownvotesCount,
		CommentsCount:  post.CommentsCount,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}

	return s.postESRepo.IndexPost(ctx, doc, msg.ES)
}
