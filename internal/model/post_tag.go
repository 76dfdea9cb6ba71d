package model

type PostTag struct {
	PostID uint64 `gorm:"primaryKey" json:"postId"`
	Tag    string `gorm:"primaryKey;type:varchar(50)" json:"tag"`
}

func (PostTag) TableName() string {
	return "post_tags"
}
