package kafka

import (
	"bemusicshare/internal/pkg/redis"
	"context"
	"errors"
	log "log/slog"
	"strconv"

	redisv9 "github.com/redis/go-redis/v9"
)

// ActionParams 计数动作参数
type ActionParams struct {
	TargetID       uint64
	CountKeyPrefix string
	DirtyKey       string
	Delta          int64
	NotifyFunc     func()
}

// ExecAction 调整缓存计数并把目标标脏，计数键不存在时跳过增减，
// 等对账任务从账本回填
func ExecAction(ctx context.Context, p ActionParams) {
	key := p.CountKeyPrefix + strconv.FormatUint(p.TargetID, 10)

	if p.Delta != 0 {
		_, err := redis.GetInt64(ctx, key)
		switch {
		case err == nil:
			if err := redis.IncrBy(ctx, key, p.Delta); err != nil {
				log.ErrorContext(ctx, "failed to adjust cached count", "key", key, "err", err)
			}
		case errors.Is(err, redisv9.Nil):
		default:
			log.ErrorContext(ctx, "failed to read cached count", "key", key, "err", err)
		}
	}

	if p.DirtyKey != "" {
		if err := redis.SAdd(ctx, p.DirtyKey, p.TargetID); err != nil {
			log.ErrorContext(ctx, "failed to mark dirty", "key", p.DirtyKey, "err", err)
		}
	}

	if p.NotifyFunc != nil {
		p.NotifyFunc()
	}
}

// StrToUint64 Canal 行数据里数字一律是字符串
func StrToUint64(v interface{}) uint64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// StrField 读取 Canal 行里的字符串字段
func StrField(row map[string]interface{}, key string) string {
	s, _ := row[key].(string)
	return s
}
