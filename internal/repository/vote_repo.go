package repository

import (
	"bemusicshare/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepo interface {
	CastVote(ctx context.Context, userID, postID uint64, voteType string) (model.VoteTransition, error)
	GetVote(ctx context.Context, userID, postID uint64) (*model.Vote, error)
	GetVotesByPostIDs(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]string, error)
	GetVoteCounts(ctx context.Context, postID uint64) (up int64, down int64, err error)
}

type VoteRepoImpl struct {
	db *gorm.DB
}

func NewVoteRepo(db *gorm.DB) VoteRepo {
	return &VoteRepoImpl{db: db}
}

// CastVote 在单个事务内完成 查票 -> 状态转移 -> 写票 -> 调整冗余计数
//
// 先对帖子行加排他锁，同一 (user, post) 的并发投票被串行化，
// 计数增量与票据变更保持原子。
func (s *VoteRepoImpl) CastVote(ctx context.Context, userID, postID uint64, voteType string) (model.VoteTransition, error) {
	var tr model.VoteTransition

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&post, postID).Error; err != nil {
			return err
		}

		current := ""
		var existing model.Vote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			current = existing.VoteType
		}

		tr = model.ResolveVote(current, voteType)

		switch {
		case tr.Result == "":
			if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
				Delete(&model.Vote{}).Error; err != nil {
				return err
			}
		case current == "":
			now := time.Now()
			if err := tx.Create(&model.Vote{
				UserID:    userID,
				PostID:    postID,
				VoteType:  voteType,
				CreatedAt: now,
				UpdatedAt: now,
			}).Error; err != nil {
				return err
			}
		default:
			if err := tx.Model(&model.Vote{}).
				Where("user_id = ? AND post_id = ?", userID, postID).
				Update("vote_type", voteType).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if tr.UpDelta != 0 {
			updates["upvotes_count"] = gorm.Expr("upvotes_count + ?", tr.UpDelta)
		}
		if tr.DownDelta != 0 {
			updates["downvotes_count"] = gorm.Expr("downvotes_count + ?", tr.DownDelta)
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			Updates(updates).Error
	})

	return tr, err
}

func (s *VoteRepoImpl) GetVote(ctx context.Context, userID, postID uint64) (*model.Vote, error) {
	var vote model.Vote
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&vote)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &vote, nil
}

// GetVotesByPostIDs 批量拉取某个用户在一页帖子上的票型
func (s *VoteRepoImpl) GetVotesByPostIDs(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]string, error) {
	res := make(map[uint64]string, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return res, nil
	}

	var votes []*model.Vote
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Find(&votes).Error
	if err != nil {
		return nil, err
	}

	for _, v := range votes {
		res[v.PostID] = v.VoteType
	}
	return res, nil
}

// GetVoteCounts 从账本实时统计票数，对账任务用
func (s *VoteRepoImpl) GetVoteCounts(ctx context.Context, postID uint64) (int64, int64, error) {
	var up, down int64
	err := s.db.WithContext(ctx).Model(&model.Vote{}).
		Where("post_id = ? AND vote_type = ?", postID, "up").
		Count(&up).Error
	if err != nil {
		return 0, 0, err
	}
	err = s.db.WithContext(ctx).Model(&model.Vote{}).
		Where("post_id = ? AND vote_type = ?", postID, "down").
		Count(&down).Error
	if err != nil {
		return 0, 0, err
	}
	return up, down, nil
}
