package consts

const (
	// VoteUp / VoteDown votes 表里的投票类型
	VoteUp   = "up"
	VoteDown = "down"

	// VoteAPIUp / VoteAPIDown 接口上的投票类型
	VoteAPIUp   = "upvote"
	VoteAPIDown = "downvote"
)

const (
	// VoteActionCreated castVote 动作标签
	VoteActionCreated = "created"
	VoteActionRemoved = "removed"
	VoteActionChanged = "changed"
)

const (
	SongStatusPending  int8 = 0
	SongStatusApproved int8 = 1
	SongStatusRejected int8 = 2
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

const (
	SortRecent   = "recent"
	SortTop      = "top"
	SortTrending = "trending"
)

const (
	DefaultAvatarURL = "default_avatar.png"
	RoleAdmin        = "ADMIN"
)
