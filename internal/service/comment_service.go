package service

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/model"
	"bemusicshare/internal/pkg/minio"
	"bemusicshare/internal/repository"
	"context"
	"time"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID, postID uint64, createDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, isAdmin bool, postID, commentID uint64) error
	ListComments(ctx context.Context, postID uint64, page, pageSize int) (*dto.CommentListDTO, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, userID, postID uint64, createDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   createDTO.Content,
		CreatedAt: time.Now(),
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}

	commentDTO := &dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UserID:    userID,
	}
	if user != nil {
		commentDTO.Nickname = user.Nickname
		commentDTO.AvatarURL = minio.GetPublicURL(user.AvatarURL)
	}
	return commentDTO, nil
}

// DeleteComment 评论作者、帖主和管理员都可以删除评论
func (s *CommentServiceImpl) DeleteComment(ctx context.Context, userID uint64, isAdmin bool, postID, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.PostID != postID {
		return ErrCommentNotFound
	}

	if comment.UserID != userID && !isAdmin {
		post, err := s.postRepo.GetPostById(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil || post.UserID != userID {
			return UnauthorizedError
		}
	}

	deleted, err := s.commentRepo.DeleteComment(ctx, commentID, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}
	return nil
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, postID uint64, page, pageSize int) (*dto.CommentListDTO, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	comments, err := s.commentRepo.GetCommentsByPostId(ctx, postID, pageSize+1, offset)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(comments) > pageSize {
		hasMore = true
		comments = comments[:pageSize]
	}

	list := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		list = append(list, &dto.CommentDTO{
			ID:        c.ID,
			PostID:    c.PostID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			UserID:    c.UserID,
			Nickname:  c.User.Nickname,
			AvatarURL: minio.GetPublicURL(c.User.AvatarURL),
		})
	}

	return &dto.CommentListDTO{Comments: list, HasMore: hasMore}, nil
}
