package repository

import (
	"bemusicshare/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SongRepo interface {
	CreateSong(ctx context.Context, song *model.Song) error
	GetSongById(ctx context.Context, id uint64) (*model.Song, error)
	GetSongByIds(ctx context.Context, ids []uint64) ([]*model.Song, error)
	UpdateSongStatus(ctx context.Context, id uint64, status int8) (int64, error)
	GetGenres(ctx context.Context) ([]string, error)
}

type SongRepoImpl struct {
	db *gorm.DB
}

func NewSongRepo(db *gorm.DB) SongRepo {
	return &SongRepoImpl{db: db}
}

func (s *SongRepoImpl) CreateSong(ctx context.Context, song *model.Song) error {
	return s.db.WithContext(ctx).Create(song).Error
}

func (s *SongRepoImpl) GetSongById(ctx context.Context, id uint64) (*model.Song, error) {
	song := &model.Song{}
	result := s.db.WithContext(ctx).First(song, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return song, nil
}

func (s *SongRepoImpl) GetSongByIds(ctx context.Context, ids []uint64) ([]*model.Song, error) {
	songs := make([]*model.Song, 0)
	result := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&songs)
	if result.Error != nil {
		return nil, result.Error
	}
	return songs, nil
}

// UpdateSongStatus 审核状态流转，返回影响行数用于判断歌曲是否存在
func (s *SongRepoImpl) UpdateSongStatus(ctx context.Context, id uint64, status int8) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Song{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (s *SongRepoImpl) GetGenres(ctx context.Context) ([]string, error) {
	var genres []string
	err := s.db.WithContext(ctx).Model(&model.Song{}).
		Where("genre <> ''").
		Distinct().
		Order("genre ASC").
		Pluck("genre", &genres).Error
	return genres, err
}
