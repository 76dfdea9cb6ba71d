package repository

import (
	"bemusicshare/internal/model"
	"bemusicshare/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// FeedQuery 信息流筛选与分页条件
type FeedQuery struct {
	AuthorID uint64
	Genre    string
	Since    time.Time
	Sort     string
	Limit    int
	Offset   int
}

// FeedRow 信息流扁平连接行，一个帖子带 N 个标签就有 N 行
type FeedRow struct {
	PostID         uint64
	Content        string
	UpvotesCount   int
	DownvotesCount int
	CommentsCount  int
	CreatedAt      time.Time
	UserID         uint64
	Nickname       string
	AvatarURL      string
	SongID         uint64
	SongTitle      string
	SongArtistID   uint64
	Artist         string
	Genre          string
	Duration       int
	MediaURL       string
	CoverURL       string
	Tag            *string
}

// TrendingRow 热榜统计行
type TrendingRow struct {
	PostID       uint64
	UpvotesCount int
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, tags []string) error
	GetPostById(ctx context.Context, id uint64) (*model.Post, error)
	DeletePost(ctx context.Context, id uint64) error
	GetFeedPostIDs(ctx context.Context, query *FeedQuery) ([]uint64, error)
	GetFeedRows(ctx context.Context, postIDs []uint64) ([]*FeedRow, error)
	GetTrendingRows(ctx context.Context, since time.Time, limit int) ([]*TrendingRow, error)
	ResetPostCounts(ctx context.Context, id uint64, up, down, comments int64) error
	GetCommentCount(ctx context.Context, id uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// CreatePost 帖子与标签在同一事务内落库
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tags []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		rows := make([]*model.PostTag, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, &model.PostTag{PostID: post.ID, Tag: tag})
		}
		return tx.Create(rows).Error
	})
}

func (s *PostRepoImpl) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Song").
		Preload("Tags").
		First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

// DeletePost 连带清理票据、评论与标签
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", id).Delete(&model.PostTag{}).Error
	})
}

// GetFeedPostIDs 信息流第一阶段：按条件取出一页帖子 id
//
// 排序键之外永远追加 id DESC，保证分页边界稳定。
func (s *PostRepoImpl) GetFeedPostIDs(ctx context.Context, query *FeedQuery) ([]uint64, error) {
	db := s.db.WithContext(ctx).Model(&model.Post{})

	if query.AuthorID > 0 {
		db = db.Where("posts.user_id = ?", query.AuthorID)
	}
	if query.Genre != "" {
		db = db.Joins("JOIN songs ON songs.id = posts.song_id").
			Where("songs.genre = ?", query.Genre)
	}
	if !query.Since.IsZero() {
		db = db.Where("posts.created_at >= ?", query.Since)
	}

	switch query.Sort {
	case consts.SortTop:
		db = db.Order("posts.upvotes_count DESC, posts.id DESC")
	default:
		db = db.Order("posts.created_at DESC, posts.id DESC")
	}

	var ids []uint64
	err := db.Limit(query.Limit).Offset(query.Offset).
		Pluck("posts.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetFeedRows 信息流第二阶段：对第一阶段的 id 集合做一次扁平连接，
// 返回行按 post_id 与 tag 排序，分组在服务层完成
func (s *PostRepoImpl) GetFeedRows(ctx context.Context, postIDs []uint64) ([]*FeedRow, error) {
	if len(postIDs) == 0 {
		return []*FeedRow{}, nil
	}

	var rows []*FeedRow
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select(`posts.id AS post_id, posts.content, posts.upvotes_count, posts.downvotes_count,
			posts.comments_count, posts.created_at,
			users.id AS user_id, users.nickname, users.avatar_url,
			songs.id AS song_id, songs.title AS song_title, songs.artist_id AS song_artist_id,
			songs.artist, songs.genre,
			songs.duration, songs.media_url, songs.cover_url,
			post_tags.tag AS tag`).
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("JOIN songs ON songs.id = posts.song_id").
		Joins("LEFT JOIN post_tags ON post_tags.post_id = posts.id").
		Where("posts.id IN ?", postIDs).
		Order("posts.id, post_tags.tag").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTrendingRows 取出窗口内票数最高的帖子，热榜任务用
func (s *PostRepoImpl) GetTrendingRows(ctx context.Context, since time.Time, limit int) ([]*TrendingRow, error) {
	var rows []*TrendingRow
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("posts.id AS post_id, posts.upvotes_count").
		Where("posts.created_at >= ?", since).
		Order("posts.upvotes_count DESC, posts.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ResetPostCounts 对账任务回写冗余计数
func (s *PostRepoImpl) ResetPostCounts(ctx context.Context, id uint64, up, down, comments int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"upvotes_count":   up,
			"downvotes_count": down,
			"comments_count":  comments,
		}).Error
}

func (s *PostRepoImpl) GetCommentCount(ctx context.Context, id uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", id).
		Count(&count).Error
	return count, err
}
