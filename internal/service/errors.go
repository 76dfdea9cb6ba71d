package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrUserNotFound          = errors.New("用户不存在")
	ErrUserExist             = errors.New("用户已存在")
	ErrPasswordIncorrect     = errors.New("密码错误")
	ErrUserFollowExist       = errors.New("用户已关注")
	ErrUserFollowLimit       = errors.New("用户关注数量超过限制")
	ErrUserFollowSelf        = errors.New("用户不能关注自己")
	ErrUserFollowNotFound    = errors.New("关注关系不存在")
	ErrPostNotFound          = errors.New("推荐不存在")
	ErrSongNotFound          = errors.New("歌曲不存在")
	ErrSongNotApproved       = errors.New("歌曲未通过审核")
	ErrCommentNotFound       = errors.New("评论不存在")
	ErrVoteTypeInvalid       = errors.New("投票类型错误")
	ErrSavedSongExist        = errors.New("歌曲已在收藏夹")
	ErrSavedSongNotFound     = errors.New("歌曲不在收藏夹")
	ErrNotificationNotFound  = errors.New("通知不存在")
	ErrActionDuplicate       = errors.New("重复操作")
	UnauthorizedError        = errors.New("权限不足")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserExist:            BadRequest,
	ErrPasswordIncorrect:    Unauthorized,
	ErrUserFollowExist:      BadRequest,
	ErrUserFollowLimit:      BadRequest,
	ErrUserFollowSelf:       BadRequest,
	ErrUserFollowNotFound:   NotFound,
	ErrPostNotFound:         NotFound,
	ErrSongNotFound:         NotFound,
	ErrSongNotApproved:      BadRequest,
	ErrCommentNotFound:      NotFound,
	ErrVoteTypeInvalid:      BadRequest,
	ErrSavedSongExist:       BadRequest,
	ErrSavedSongNotFound:    NotFound,
	ErrNotificationNotFound: NotFound,
	ErrActionDuplicate:      BadRequest,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
