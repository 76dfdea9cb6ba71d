package repository

import (
	"bemusicshare/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id, postID uint64) (bool, error)
	GetCommentById(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentsByPostId(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

// CreateComment 评论落库与帖子评论数自增在同一事务
func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", comment.PostID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

// DeleteComment 删除成功时同步回扣评论数，返回是否真的删到了行
func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id, postID uint64) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND post_id = ?", id, postID).
			Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Model(&model.Post{}).
			Where("id = ? AND comments_count > 0", postID).
			Update("comments_count", gorm.Expr("comments_count - 1")).Error
	})
	return deleted, err
}

func (s *CommentRepoImpl) GetCommentById(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	result := s.db.WithContext(ctx).First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

func (s *CommentRepoImpl) GetCommentsByPostId(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
