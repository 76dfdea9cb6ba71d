package model

import (
	"time"

	"bemusicshare/internal/pkg/consts"
)

// Vote 一条投票记录，复合主键保证每个 (user, post) 至多一票
type Vote struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"postId"`
	VoteType  string    `gorm:"type:varchar(8);not null" json:"voteType"` // up / down
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Vote) TableName() string {
	return "votes"
}

// VoteTransition 一次投票动作的结果
type VoteTransition struct {
	Action    string // created / removed / changed
	Result    string // 投票后的票型，撤销时为空
	UpDelta   int
	DownDelta int
}

// ResolveVote 根据当前票型和请求票型计算状态转移
//
// 同票型重复投票视为撤销，异票型视为改票，计数增量随动作同步给出。
func ResolveVote(current, requested string) VoteTransition {
	if current == "" {
		t := VoteTransition{Action: consts.VoteActionCreated, Result: requested}
		if requested == consts.VoteUp {
			t.UpDelta = 1
		} else {
			t.DownDelta = 1
		}
		return t
	}

	if current == requested {
		t := VoteTransition{Action: consts.VoteActionRemoved, Result: ""}
		if current == consts.VoteUp {
			t.UpDelta = -1
		} else {
			t.DownDelta = -1
		}
		return t
	}

	t := VoteTransition{Action: consts.VoteActionChanged, Result: requested}
	if requested == consts.VoteUp {
		t.UpDelta = 1
		t.DownDelta = -1
	} else {
		t.UpDelta = -1
		t.DownDelta = 1
	}
	return t
}
