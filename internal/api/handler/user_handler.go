package handler

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/pkg/response"
	"bemusicshare/internal/pkg/util"
	"bemusicshare/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.Register(c.Request.Context(), &registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var credDTO dto.CredentialDTO
	if err := c.ShouldBind(&credDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&credDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &credDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetUserInfo 当前登录用户的完整资料
func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userId := c.GetUint64("user_id")
	info, err := s.userSvc.GetUserInfo(c.Request.Context(), userId, userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

// GetUserById 任何人可见的用户主页资料
func (s *UserHandler) GetUserById(c *gin.Context) {
	viewerId := c.GetUint64("user_id")
	targetId, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	info, err := s.userSvc.GetUserInfo(c.Request.Context(), viewerId, targetId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

func (s *UserHandler) UpdateUserInfo(c *gin.Context) {
	userId := c.GetUint64("user_id")
	var updateDTO dto.UpdateUserDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.UpdateUserInfo(c.Request.Context(), userId, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
