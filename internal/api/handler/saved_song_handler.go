package handler

import (
	"bemusicshare/internal/pkg/response"
	"bemusicshare/internal/service"

	"github.com/gin-gonic/gin"
)

type SavedSongHandler struct {
	savedSongSvc service.SavedSongService
}

func NewSavedSongHandler(savedSongSvc service.SavedSongService) *SavedSongHandler {
	return &SavedSongHandler{savedSongSvc: savedSongSvc}
}

func (s *SavedSongHandler) SaveSong(c *gin.Context) {
	userId := c.GetUint64("user_id")
	songId := pathID(c, "song_id")
	if songId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.savedSongSvc.SaveSong(c.Request.Context(), userId, songId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SavedSongHandler) UnsaveSong(c *gin.Context) {
	userId := c.GetUint64("user_id")
	songId := pathID(c, "song_id")
	if songId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.savedSongSvc.UnsaveSong(c.Request.Context(), userId, songId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SavedSongHandler) ListSavedSongs(c *gin.Context) {
	userId := c.GetUint64("user_id")
	page, pageSize := getPagination(c)

	list, err := s.savedSongSvc.ListSavedSongs(c.Request.Context(), userId, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
