package handler

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/pkg/response"
	"bemusicshare/internal/pkg/util"
	"bemusicshare/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	userId := c.GetUint64("user_id")
	postId := pathID(c, "post_id")
	if postId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var createDTO dto.CreateCommentDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userId, postId, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userId := c.GetUint64("user_id")
	postId := pathID(c, "post_id")
	commentId := pathID(c, "comment_id")
	if postId == 0 || commentId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), userId, isAdmin(c), postId, commentId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	postId := pathID(c, "post_id")
	if postId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := getPagination(c)

	list, err := s.commentSvc.ListComments(c.Request.Context(), postId, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
