package model

import (
	"time"
)

// Post 一条歌曲推荐
type Post struct {
	ID             uint64    `gorm:"primaryKey"`
	UserID         uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	SongID         uint64    `gorm:"not null;index:idx_song_id" json:"song_id"`
	Content        string    `gorm:"not null" json:"content"`
	UpvotesCount   int       `gorm:"not null;default:0" json:"upvotes_count"`
	DownvotesCount int       `gorm:"not null;default:0" json:"downvotes_count"`
	CommentsCount  int       `gorm:"not null;default:0" json:"comments_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID;references:ID"`
	Song Song `gorm:"foreignKey:SongID;references:ID"`
	Tags []PostTag `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
