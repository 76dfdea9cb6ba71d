package es

import "time"

// PostES 写入 ES 的推荐帖文档
type PostES struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"user_id"`
	SongID         uint64    `json:"song_id"`
	Content        string    `json:"content"`
	SongTitle      string    `json:"song_title"`
	Genre          string    `json:"genre"`
	Tags           []string  `json:"tags"`
	UserNickname   string    `json:"user_nickname"`
	UpvotesCount   int       `json:"upvotes_count"`
	DownvotesCount int       `json:"downvotes_count"`
	CommentsCount  int       `json:"comments_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Sort 游标翻页用的排序值，不落入文档
	Sort []interface{} `json:"-"`
}
