package repository

import (
	"bemusicshare/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedSongRepo interface {
	CreateSavedSong(ctx context.Context, userID, songID uint64) (bool, error)
	DeleteSavedSong(ctx context.Context, userID, songID uint64) (bool, error)
	GetSavedSongIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error)
}

type SavedSongRepoImpl struct {
	db *gorm.DB
}

func NewSavedSongRepo(db *gorm.DB) SavedSongRepo {
	return &SavedSongRepoImpl{db: db}
}

// CreateSavedSong 幂等收藏，已存在时返回 false
func (s *SavedSongRepoImpl) CreateSavedSong(ctx context.Context, userID, songID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SavedSong{
			UserID:    userID,
			SongID:    songID,
			CreatedAt: time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *SavedSongRepoImpl) DeleteSavedSong(ctx context.Context, userID, songID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND song_id = ?", userID, songID).
		Delete(&model.SavedSong{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *SavedSongRepoImpl) GetSavedSongIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.SavedSong{}).
		Where("user_id = ?", userID).
		Order("created_at DESC, song_id DESC").
		Limit(limit).
		Offset(offset).
		Pluck("song_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
