package dto

import "time"

type FollowUserDTO struct {
	UserID    uint64    `json:"user_id"`
	Nickname  string    `json:"nickname"`
	AvatarURL string    `json:"avatar_url"`
	FollowAt  time.Time `json:"follow_at"`
}

type FollowListDTO struct {
	Users   []*FollowUserDTO `json:"users"`
	HasMore bool             `json:"has_more"`
}
