package dto

import "time"

type RegisterDTO struct {
	Username string  `json:"username" validate:"required,min=4,max=20"`
	Password string  `json:"password" validate:"required,min=6,max=64"`
	Nickname string  `json:"nickname" validate:"required,min=1,max=15"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=200"`
}

type CredentialDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenDTO struct {
	UserID uint64 `json:"user_id"`
	Token  string `json:"token"`
}

type UserDTO struct {
	UserID         uint64     `json:"user_id"`
	Username       string     `json:"username"`
	Nickname       string     `json:"nickname"`
	AvatarURL      string     `json:"avatar_url"`
	Bio            string     `json:"bio"`
	FollowerCount  int64      `json:"follower_count"`
	FollowingCount int64      `json:"following_count"`
	IsFollowing    bool       `json:"is_following"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

type UpdateUserDTO struct {
	Nickname  *string `json:"nickname,omitempty" validate:"omitempty,min=1,max=15"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=200"`
}
