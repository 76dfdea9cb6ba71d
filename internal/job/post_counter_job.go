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
	"time"

	"github.com/google/uuid"
)

const countCacheTTL = time.Hour

// PostCounterJob 把脏帖子的冗余计数从票据与评论表回填，
// 同时刷新缓存里的计数键
type PostCounterJob struct {
	postRepo repository.PostRepo
	voteRepo repository.VoteRepo
}

func NewPostCounterJob(postRepo repository.PostRepo, voteRepo repository.VoteRepo) *PostCounterJob {
	return &PostCounterJob{
		postRepo: postRepo,
		voteRepo: voteRepo,
	}
}

func (s *PostCounterJob) Run() {
	traceID := "job-post-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.PostDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.PostDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get post dirty set error", "err", err)
		return
	}

	postIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert post set to int slice error", "err", err)
		return
	}

	successCount := 0
	for _, pid := range postIDs {
		up, down, err := s.voteRepo.GetVoteCounts(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "get vote counts error", "pid", pid, "err", err)
			continue
		}
		comments, err := s.postRepo.GetCommentCount(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "get comment count error", "pid", pid, "err", err)
			continue
		}

		if err = s.postRepo.ResetPostCounts(ctx, pid, up, down, comments); err != nil {
			log.ErrorContext(ctx, "reset post counts error", "pid", pid, "err", err)
			continue
		}

		pidStr := strconv.FormatUint(pid, 10)
		_ = redis.SetWithExpiration(ctx, consts.PostUpvoteKey+pidStr, up, countCacheTTL)
		_ = redis.SetWithExpiration(ctx, consts.PostDownvoteKey+pidStr, down, countCacheTTL)
		_ = redis.SetWithExpiration(ctx, consts.PostCommentKey+pidStr, comments, countCacheTTL)
		successCount++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete post processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync post counters success",
		"total_count", len(postIDs),
		"success_count", successCount)
}
