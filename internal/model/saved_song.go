package model

import "time"

type SavedSong struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	SongID    uint64    `gorm:"primaryKey;index:idx_song_id" json:"songId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SavedSong) TableName() string {
	return "saved_songs"
}
