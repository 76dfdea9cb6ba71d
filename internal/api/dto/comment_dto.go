package dto

import "time"

type CreateCommentDTO struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

type CommentDTO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// User
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

type CommentListDTO struct {
	Comments []*CommentDTO `json:"comments"`
	HasMore  bool          `json:"has_more"`
}
