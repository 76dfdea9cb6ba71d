package handler

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/pkg/response"
	"bemusicshare/internal/pkg/util"
	"bemusicshare/internal/service"

	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	songSvc service.SongService
}

func NewSongHandler(songSvc service.SongService) *SongHandler {
	return &SongHandler{songSvc: songSvc}
}

func (s *SongHandler) CreateSong(c *gin.Context) {
	var createDTO dto.CreateSongDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	song, err := s.songSvc.CreateSong(c.Request.Context(), c.GetUint64("user_id"), isAdmin(c), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, song)
}

func (s *SongHandler) GetSong(c *gin.Context) {
	songId := pathID(c, "song_id")
	if songId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	song, err := s.songSvc.GetSong(c.Request.Context(), songId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, song)
}

// ReviewSong 管理员审核歌曲
func (s *SongHandler) ReviewSong(c *gin.Context) {
	songId := pathID(c, "song_id")
	if songId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var reviewDTO dto.ReviewSongDTO
	if err := c.ShouldBind(&reviewDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.songSvc.ReviewSong(c.Request.Context(), songId, reviewDTO.Approve); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SongHandler) ListGenres(c *gin.Context) {
	genres, err := s.songSvc.ListGenres(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, genres)
}
