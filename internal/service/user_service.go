package service

import (
	"bemusicshare/internal/api/dto"
	"bemusicshare/internal/model"
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/minio"
	"bemusicshare/internal/pkg/redis"
	"bemusicshare/internal/pkg/security"
	"bemusicshare/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, viewerID, id uint64) (*dto.UserDTO, error)
	GetUserSimpleInfoByIds(ctx context.Context, ids []uint64) (map[uint64]*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error
}

type UserServiceImpl struct {
	userRepo  repository.UserRepo
	followSvc UserFollowService
}

func NewUserService(userRepo repository.UserRepo, followSvc UserFollowService) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		followSvc: followSvc,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:  regDTO.Username,
		Password:  passwordHash,
		Nickname:  regDTO.Nickname,
		AvatarURL: consts.DefaultAvatarURL,
	}
	if regDTO.Bio != nil {
		user.Bio = *regDTO.Bio
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 并发注册同名时预检查可能漏网，靠唯一索引兜底
		if isDuplicateError(err) {
			return ErrUserExist
		}
		return err
	}
	return nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.RoleList())
	if err != nil {
		return nil, err
	}

	return &dto.TokenDTO{UserID: user.ID, Token: token}, nil
}

// Logout 把令牌签名拉入黑名单，有效期与令牌一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, viewerID, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	followerCount, err := s.followSvc.GetUserFollowerCount(ctx, id)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followSvc.GetUserFollowingCount(ctx, id)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != 0 && viewerID != id {
		isFollowing, err = s.followSvc.GetSomeoneIsFollowing(ctx, viewerID, id)
		if err != nil {
			return nil, err
		}
	}

	createdAt := user.CreatedAt
	return &dto.UserDTO{
		UserID:         user.ID,
		Username:       user.Username,
		Nickname:       user.Nickname,
		AvatarURL:      minio.GetPublicURL(user.AvatarURL),
		Bio:            user.Bio,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		IsFollowing:    isFollowing,
		CreatedAt:      &createdAt,
	}, nil
}

// GetUserSimpleInfoByIds 批量取用户基础信息，关注列表渲染用
func (s *UserServiceImpl) GetUserSimpleInfoByIds(ctx context.Context, ids []uint64) (map[uint64]*dto.UserDTO, error) {
	users, err := s.userRepo.GetUserByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := make(map[uint64]*dto.UserDTO, len(users))
	for _, user := range users {
		res[user.ID] = &dto.UserDTO{
			UserID:    user.ID,
			Username:  user.Username,
			Nickname:  user.Nickname,
			AvatarURL: minio.GetPublicURL(user.AvatarURL),
		}
	}
	return res, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if updateDTO.Nickname != nil {
		updates["nickname"] = *updateDTO.Nickname
	}
	if updateDTO.AvatarURL != nil {
		updates["avatar_url"] = *updateDTO.AvatarURL
	}
	if updateDTO.Bio != nil {
		updates["bio"] = *updateDTO.Bio
	}
	if len(updates) == 0 {
		return nil
	}

	return s.userRepo.UpdateUser(ctx, id, updates)
}
