package consts

const (
	UserFollowerKey       = "user:follower:"
	UserFollowingKey      = "user:following:"
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	PostUpvoteKey         = "post:upvote:"
	PostDownvoteKey       = "post:downvote:"
	PostCommentKey        = "post:comment:"
	PostDirtyKey          = "post:dirty"
	UserFollowDirtyKey    = "user:follow:dirty"
	TrendingPostsKey      = "feed:trending:posts"
)

const (
	VoteNotifyLock = "notify:vote:lock:"
)
