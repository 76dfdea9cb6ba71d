package handler

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/pkg/response"
	"bemusicshare/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
	userSvc       service.UserService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService, userSvc service.UserService) *UserFollowHandler {
	return &UserFollowHandler{
		userFollowSvc: userFollowSvc,
		userSvc:       userSvc,
	}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	userId := c.GetUint64("user_id")
	followingId := pathID(c, "user_id")
	if followingId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userFollowSvc.CreateUserFollow(c.Request.Context(), userId, followingId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	userId := c.GetUint64("user_id")
	followingId := pathID(c, "user_id")
	if followingId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userFollowSvc.DeleteUserFollow(c.Request.Context(), userId, followingId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) GetFollowers(c *gin.Context) {
	s.listFollows(c, true)
}

func (s *UserFollowHandler) GetFollowing(c *gin.Context) {
	s.listFollows(c, false)
}

// listFollows 关注/粉丝列表共用装配逻辑
func (s *UserFollowHandler) listFollows(c *gin.Context, isFollowerList bool) {
	targetId := pathID(c, "user_id")
	if targetId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := getPagination(c)
	offset := (page - 1) * pageSize

	var rows []*dto.FollowUserDTO
	var ids []uint64

	if isFollowerList {
		list, listErr := s.userFollowSvc.GetUserFollowers(c.Request.Context(), targetId, pageSize+1, offset)
		if listErr != nil {
			response.Error(c, listErr)
			return
		}
		for _, f := range list {
			ids = append(ids, f.FollowerID)
			rows = append(rows, &dto.FollowUserDTO{UserID: f.FollowerID, FollowAt: f.CreatedAt})
		}
	} else {
		list, listErr := s.userFollowSvc.GetUserFollowing(c.Request.Context(), targetId, pageSize+1, offset)
		if listErr != nil {
			response.Error(c, listErr)
			return
		}
		for _, f := range list {
			ids = append(ids, f.FollowingID)
			rows = append(rows, &dto.FollowUserDTO{UserID: f.FollowingID, FollowAt: f.CreatedAt})
		}
	}

	hasMore := false
	if len(rows) > pageSize {
		hasMore = true
		rows = rows[:pageSize]
		ids = ids[:pageSize]
	}

	users, err := s.userSvc.GetUserSimpleInfoByIds(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}
	for _, row := range rows {
		if u, ok := users[row.UserID]; ok {
			row.Nickname = u.Nickname
			row.AvatarURL = u.AvatarURL
		}
	}

	response.Success(c, &dto.FollowListDTO{Users: rows, HasMore: hasMore})
}
