package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Password  string `gorm:"type:varchar(255);not null"`
	Nickname  string `gorm:"type:varchar(50)"`
	AvatarURL string `gorm:"type:varchar(512)"`
	Bio       string `gorm:"type:varchar(200)"`
	Roles     string `gorm:"type:varchar(255)"` // 逗号分隔的角色列表，如 "ADMIN"
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// RoleList 解析角色字符串
func (u *User) RoleList() []string {
	if u.Roles == "" {
		return nil
	}
	var roles []string
	start := 0
	for i := 0; i <= len(u.Roles); i++ {
		if i == len(u.Roles) || u.Roles[i] == ',' {
			if i > start {
				roles = append(roles, u.Roles[start:i])
			}
			start = i + 1
		}
	}
	return roles
}
