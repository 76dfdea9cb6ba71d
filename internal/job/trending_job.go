package job

import (
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/logger"
	"bemusicshare/internal/pkg/redis"
	"bemusicshare/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
)

const (
	trendingWindow = 7 * 24 * time.Hour
	trendingSize   = 100
)

// TrendingJob 重建热榜 ZSET，先写临时键再 RENAME，读侧不会看到半成品
type TrendingJob struct {
	postRepo repository.PostRepo
}

func NewTrendingJob(postRepo repository.PostRepo) *TrendingJob {
	return &TrendingJob{postRepo: postRepo}
}

func (s *TrendingJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	since := time.Now().Add(-trendingWindow)
	rows, err := s.postRepo.GetTrendingRows(ctx, since, trendingSize)
	if err != nil {
		log.ErrorContext(ctx, "get trending rows error", "err", err)
		return
	}

	if len(rows) == 0 {
		_ = redis.DeleteKey(ctx, consts.TrendingPostsKey)
		log.InfoContext(ctx, "trending board rebuilt empty")
		return
	}

	members := make([]redisv9.Z, 0, len(rows))
	for _, row := range rows {
		members = append(members, redisv9.Z{
			Score:  float64(row.UpvotesCount),
			Member: row.PostID,
		})
	}

	tempKey := consts.TrendingPostsKey + ":building"
	if err = redis.ZAdd(ctx, tempKey, members...); err != nil {
		log.ErrorContext(ctx, "build trending zset error", "err", err)
		return
	}
	if err = redis.Rename(ctx, tempKey, consts.TrendingPostsKey); err != nil {
		log.ErrorContext(ctx, "swap trending zset error", "err", err)
		return
	}

	log.InfoContext(ctx, "trending board rebuilt", "size", len(rows))
}
