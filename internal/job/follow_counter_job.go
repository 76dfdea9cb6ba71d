package job

import (
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/logger"
	"bemusicshare/internal/pkg/redis"
	"bemusicshare/internal/pkg/util"
	"bemusicshare/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// FollowCounterJob 把脏用户的关注/粉丝计数从关系表回填缓存
type FollowCounterJob struct {
	followRepo repository.UserFollowRepo
}

func NewFollowCounterJob(followRepo repository.UserFollowRepo) *FollowCounterJob {
	return &FollowCounterJob{followRepo: followRepo}
}

func (s *FollowCounterJob) Run() {
	traceID := "job-follow-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.UserFollowDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.UserFollowDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get follow dirty set error", "err", err)
		return
	}

	userIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert follow set to int slice error", "err", err)
		return
	}

	successCount := 0
	for _, uid := range userIDs {
		followers, err := s.followRepo.GetUserFollowerCount(ctx, uid)
		if err != nil {
			log.ErrorContext(ctx, "get follower count error", "uid", uid, "err", err)
			continue
		}
		following, err := s.followRepo.GetUserFollowingCount(ctx, uid)
		if err != nil {
			log.ErrorContext(ctx, "get following count error", "uid", uid, "err", err)
			continue
		}

		uidStr := strconv.FormatUint(uid, 10)
		_ = redis.SetValue(ctx, consts.UserFollowerCountKey+uidStr, followers)
		_ = redis.SetValue(ctx, consts.UserFollowingCountKey+uidStr, following)
		successCount++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete follow processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync follow counters success",
		"total_count", len(userIDs),
		"success_count", successCount)
}
