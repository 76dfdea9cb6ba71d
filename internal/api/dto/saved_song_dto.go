package dto

type SavedSongListDTO struct {
	Songs   []*SongDTO `json:"songs"`
	HasMore bool       `json:"has_more"`
}
