package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Kimani145/Corner/internal/model"
)

const (
	// badgeKeyPrefix 用户角标 Key 前缀: corner:user:badge:{user_id}
	badgeKeyPrefix = "corner:user:badge:"
)

// BuildBadgeKey 构建用户角标 Key
func BuildBadgeKey(userID int64) string {
	return badgeKeyPrefix + strconv.FormatInt(userID, 10)
}

// BadgeRepository 通知角标数据访问（基于 Redis Hash）
type BadgeRepository struct {
	rdb *redis.Client
}

// NewBadgeRepository 创建角标仓库
func NewBadgeRepository(rdb *redis.Client) *BadgeRepository {
	return &BadgeRepository{rdb: rdb}
}

// Get 获取用户角标数据，缺失字段按零值处理
func (r *BadgeRepository) Get(ctx context.Context, userID int64) (*model.NotificationData, error) {
	data, err := r.rdb.HGetAll(ctx, BuildBadgeKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	return &model.NotificationData{
		UnreadCount:          int(parseInt64(data["unread_count"])),
		LastNotificationTime: parseInt64(data["last_notification_time"]),
		LastSeenTime:         parseInt64(data["last_seen_time"]),
	}, nil
}

// Incr 未读数加一并刷新最后通知时间，返回新的角标数据
// 两个字段在同一个 Pipeline 里更新，不会出现只改了时间没计数的状态
func (r *BadgeRepository) Incr(ctx context.Context, userID int64) (*model.NotificationData, error) {
	key := BuildBadgeKey(userID)
	now := time.Now().UnixMilli()

	pipe := r.rdb.Pipeline()
	incrCmd := pipe.HIncrBy(ctx, key, "unread_count", 1)
	pipe.HSet(ctx, key, "last_notification_time", now)
	getCmd := pipe.HGet(ctx, key, "last_seen_time")

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	lastSeen, _ := getCmd.Int64()
	return &model.NotificationData{
		UnreadCount:          int(incrCmd.Val()),
		LastNotificationTime: now,
		LastSeenTime:         lastSeen,
	}, nil
}

// MarkSeen 清零未读数并刷新最后查看时间
func (r *BadgeRepository) MarkSeen(ctx context.Context, userID int64) error {
	key := BuildBadgeKey(userID)
	now := time.Now().UnixMilli()

	return r.rdb.HSet(ctx, key,
		"unread_count", 0,
		"last_seen_time", now,
	).Err()
}

func parseInt64(str string) int64 {
	v, _ := strconv.ParseInt(str, 10, 64)
	return v
}
