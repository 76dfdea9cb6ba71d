package dto

type SongDTO struct {
	ID       uint64 `json:"id"`
	ArtistID uint64 `json:"artist_id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration"`
	MediaURL string `json:"media_url"`
	CoverURL string `json:"cover_url"`
}

type CreateSongDTO struct {
	Title    string `json:"title" validate:"required,min=1,max=100"`
	Artist   string `json:"artist" validate:"required,min=1,max=100"`
	Genre    string `json:"genre" validate:"required,min=1,max=30"`
	Duration int    `json:"duration" validate:"omitempty,min=0"`
	MediaURL string `json:"media_url" validate:"required,url"`
	CoverURL string `json:"cover_url" validate:"omitempty,url"`
}

type ReviewSongDTO struct {
	Approve bool `json:"approve"`
}
