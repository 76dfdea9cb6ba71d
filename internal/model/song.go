package model

import "time"

type Song struct {
	ID       uint64 `gorm:"primaryKey"`
	ArtistID uint64 `gorm:"not null;index:idx_artist_id"` // 归属用户
	Artist   string `gorm:"type:varchar(255);not null;index:idx_artist"`
	Title    string `gorm:"type:varchar(255);not null"`
	Genre    string `gorm:"type:varchar(50);index:idx_genre"`
	Duration int    `gorm:"not null;default:0"` // 秒
	MediaURL string `gorm:"type:varchar(512)"`
	CoverURL string `gorm:"type:varchar(512)"`
	Status   int8   `gorm:"not null;default:0"` // 0:审核中, 1:已通过, 2:拒绝
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Song) TableName() string {
	return "songs"
}
