package handler

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/pkg/response"
	"bemusicshare/internal/pkg/util"
	"bemusicshare/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
	voteSvc service.VoteService
}

func NewPostHandler(postSvc service.PostService, voteSvc service.VoteService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
		voteSvc: voteSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var createDTO dto.CreatePostDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userId, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	viewerId := c.GetUint64("user_id")
	postId := pathID(c, "post_id")
	if postId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), viewerId, postId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userId := c.GetUint64("user_id")
	postId := pathID(c, "post_id")
	if postId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), userId, isAdmin(c), postId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListFeed 信息流，支持 sort / period / genre / author_id 筛选
func (s *PostHandler) ListFeed(c *gin.Context) {
	viewerId := c.GetUint64("user_id")

	var query dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}

	list, err := s.postSvc.ListFeed(c.Request.Context(), viewerId, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// SearchPosts 关键词检索
func (s *PostHandler) SearchPosts(c *gin.Context) {
	viewerId := c.GetUint64("user_id")
	keyword := c.Query("q")
	if keyword == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	genre := c.Query("genre")
	page, pageSize := getPagination(c)

	list, err := s.postSvc.SearchPosts(c.Request.Context(), viewerId, keyword, genre, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// CastVote 对推荐投票，重复投同票型会撤票
func (s *PostHandler) CastVote(c *gin.Context) {
	userId := c.GetUint64("user_id")
	postId := pathID(c, "post_id")
	if postId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var voteDTO dto.VoteDTO
	if err := c.ShouldBind(&voteDTO); err != nil {
		response.Error(c, service.ErrVoteTypeInvalid)
		return
	}
	if err := util.ValidateDTO(&voteDTO); err != nil {
		response.Error(c, service.ErrVoteTypeInvalid)
		return
	}

	result, err := s.voteSvc.CastVote(c.Request.Context(), userId, postId, &voteDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
