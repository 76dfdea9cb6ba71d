package service

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/repository"
	"context"
)

type SavedSongService interface {
	SaveSong(ctx context.Context, userID, songID uint64) error
	UnsaveSong(ctx context.Context, userID, songID uint64) error
	ListSavedSongs(ctx context.Context, userID uint64, page, pageSize int) (*dto.SavedSongListDTO, error)
}

type SavedSongServiceImpl struct {
	savedSongRepo repository.SavedSongRepo
	songRepo      repository.SongRepo
}

func NewSavedSongService(savedSongRepo repository.SavedSongRepo, songRepo repository.SongRepo) SavedSongService {
	return &SavedSongServiceImpl{
		savedSongRepo: savedSongRepo,
		songRepo:      songRepo,
	}
}

func (s *SavedSongServiceImpl) SaveSong(ctx context.Context, userID, songID uint64) error {
	song, err := s.songRepo.GetSongById(ctx, songID)
	if err != nil {
		return err
	}
	if song == nil {
		return ErrSongNotFound
	}

	created, err := s.savedSongRepo.CreateSavedSong(ctx, userID, songID)
	if err != nil {
		return err
	}
	if !created {
		return ErrSavedSongExist
	}
	return nil
}

func (s *SavedSongServiceImpl) UnsaveSong(ctx context.Context, userID, songID uint64) error {
	deleted, err := s.savedSongRepo.DeleteSavedSong(ctx, userID, songID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSavedSongNotFound
	}
	return nil
}

// ListSavedSongs 收藏顺序以收藏时间倒序为准，批量回源后按 id 还原顺序
func (s *SavedSongServiceImpl) ListSavedSongs(ctx context.Context, userID uint64, page, pageSize int) (*dto.SavedSongListDTO, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	ids, err := s.savedSongRepo.GetSavedSongIDs(ctx, userID, pageSize+1, offset)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(ids) > pageSize {
		hasMore = true
		ids = ids[:pageSize]
	}

	songs, err := s.songRepo.GetSongByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*dto.SongDTO, len(songs))
	for _, song := range songs {
		byID[song.ID] = songToDTO(song)
	}

	list := make([]*dto.SongDTO, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			list = append(list, item)
		}
	}

	return &dto.SavedSongListDTO{Songs: list, HasMore: hasMore}, nil
}
