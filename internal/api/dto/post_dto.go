package dto

import "time"

type CreatePostDTO struct {
	SongID  uint64 `json:"song_id" validate:"required"`
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// PostDTO 信息流里的单个推荐帖
type PostDTO struct {
	ID             uint64    `json:"id"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	UpvotesCount   int       `json:"upvotes_count"`
	DownvotesCount int       `json:"downvotes_count"`
	CommentsCount  int       `json:"comments_count"`
	CreatedAt      time.Time `json:"created_at"`

	// UserVote 当前访问者的票型，未投票或未登录时为 null
	UserVote *string `json:"user_vote"`

	// User
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`

	// Song
	Song *SongDTO `json:"song"`
}

// FeedQueryDTO 信息流筛选条件
type FeedQueryDTO struct {
	Sort     string `form:"sort" validate:"omitempty,oneof=recent top trending"`
	Period   string `form:"period" validate:"omitempty,oneof=today week month all"`
	Genre    string `form:"genre"`
	AuthorID uint64 `form:"author_id"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=50"`
}

type PostListDTO struct {
	Posts   []*PostDTO `json:"posts"`
	HasMore bool       `json:"has_more"`
}
