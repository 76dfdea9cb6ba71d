package service

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/model"
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/minio"
	"bemusicshare/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type SongService interface {
	CreateSong(ctx context.Context, userID uint64, isAdmin bool, createDTO *dto.CreateSongDTO) (*dto.SongDTO, error)
	GetSong(ctx context.Context, id uint64) (*dto.SongDTO, error)
	ReviewSong(ctx context.Context, id uint64, approve bool) error
	ListGenres(ctx context.Context) ([]string, error)
}

type SongServiceImpl struct {
	songRepo repository.SongRepo
}

func NewSongService(songRepo repository.SongRepo) SongService {
	return &SongServiceImpl{songRepo: songRepo}
}

// CreateSong 普通用户提交的歌曲进入待审状态，管理员直接上架
func (s *SongServiceImpl) CreateSong(ctx context.Context, userID uint64, isAdmin bool, createDTO *dto.CreateSongDTO) (*dto.SongDTO, error) {
	song := &model.Song{
		ArtistID: userID,
		Title:    createDTO.Title,
		Artist:   createDTO.Artist,
		Genre:    createDTO.Genre,
		Duration: createDTO.Duration,
		MediaURL: createDTO.MediaURL,
		CoverURL: createDTO.CoverURL,
		Status:   consts.SongStatusPending,
	}
	if isAdmin {
		song.Status = consts.SongStatusApproved
	}

	if err := s.songRepo.CreateSong(ctx, song); err != nil {
		return nil, err
	}
	return songToDTO(song), nil
}

func (s *SongServiceImpl) GetSong(ctx context.Context, id uint64) (*dto.SongDTO, error) {
	song, err := s.songRepo.GetSongById(ctx, id)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, ErrSongNotFound
	}
	return songToDTO(song), nil
}

func (s *SongServiceImpl) ReviewSong(ctx context.Context, id uint64, approve bool) error {
	status := consts.SongStatusRejected
	if approve {
		status = consts.SongStatusApproved
	}

	affected, err := s.songRepo.UpdateSongStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSongNotFound
	}
	return nil
}

func (s *SongServiceImpl) ListGenres(ctx context.Context) ([]string, error) {
	return s.songRepo.GetGenres(ctx)
}

func songToDTO(song *model.Song) *dto.SongDTO {
	item := &dto.SongDTO{}
	_ = copier.Copy(item, song)
	item.MediaURL = minio.GetPublicURL(song.MediaURL)
	item.CoverURL = minio.GetPublicURL(song.CoverURL)
	return item
}
