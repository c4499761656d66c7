package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	natsio "github.com/nats-io/nats.go"

	"github.com/Kimani145/Corner/internal/model"
	cornerNats "github.com/Kimani145/Corner/internal/nats"
	"github.com/Kimani145/Corner/internal/repository"
)

// BadgeService 通知角标服务
type BadgeService struct {
	badgeRepo *repository.BadgeRepository
	publisher *cornerNats.BadgePublisher
	nc        *natsio.Conn
	logger    *slog.Logger
}

// NewBadgeService 创建角标服务
func NewBadgeService(badgeRepo *repository.BadgeRepository, publisher *cornerNats.BadgePublisher, nc *natsio.Conn) *BadgeService {
	return &BadgeService{
		badgeRepo: badgeRepo,
		publisher: publisher,
		nc:        nc,
		logger:    slog.Default(),
	}
}

// Get 获取用户当前角标状态
func (s *BadgeService) Get(ctx context.Context, userID int64) (*model.Badge, error) {
	data, err := s.badgeRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return deriveBadge(data), nil
}

// MarkSeen 用户查看通知：清零未读数、刷新查看时间
// 返回清零后的角标，调用方不必等订阅重新下发
func (s *BadgeService) MarkSeen(ctx context.Context, userID int64) (*model.Badge, error) {
	if err := s.badgeRepo.MarkSeen(ctx, userID); err != nil {
		return nil, err
	}
	return &model.Badge{UnreadCount: 0, HasNew: false, ShowDot: false}, nil
}

// Notify 给用户记一条新通知：未读数加一并推送新状态
func (s *BadgeService) Notify(ctx context.Context, userID int64) error {
	data, err := s.badgeRepo.Incr(ctx, userID)
	if err != nil {
		return err
	}

	return s.publisher.PublishBadge(userID, deriveBadge(data))
}

// BadgeSubscription 角标订阅句柄
// C 持续收到角标状态；Close 取消订阅，此后 C 不再有新值
// 通道不关闭，避免与仍在执行的投递回调竞争
type BadgeSubscription struct {
	C    chan model.Badge
	sub  *natsio.Subscription
	once sync.Once
}

// Close 取消订阅，可重复调用
func (s *BadgeSubscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.sub.Unsubscribe()
	})
	return err
}

// Subscribe 订阅用户的角标推送
// 返回的句柄必须在组件销毁时 Close，否则会泄漏订阅
func (s *BadgeService) Subscribe(userID int64) (*BadgeSubscription, error) {
	ch := make(chan model.Badge, 16)

	sub, err := s.nc.Subscribe(cornerNats.BuildBadgeSubject(userID), func(msg *natsio.Msg) {
		var badge model.Badge
		if err := json.Unmarshal(msg.Data, &badge); err != nil {
			s.logger.Error("Failed to unmarshal badge", "userId", userID, "error", err)
			return
		}
		select {
		case ch <- badge:
		default:
			// 消费不过来时丢弃旧状态，角标只关心最新值
			s.logger.Debug("Badge channel full, dropping update", "userId", userID)
		}
	})
	if err != nil {
		return nil, err
	}

	return &BadgeSubscription{C: ch, sub: sub}, nil
}

// deriveBadge 从存储数据推导角标状态
// hasNew: 两个时间都有时比较先后；没有查看时间时退化为未读数判断；否则 false
// 数字角标优先；unread_count == 0 且 has_new 才显示无数字圆点
func deriveBadge(data *model.NotificationData) *model.Badge {
	hasNew := false
	switch {
	case data.LastNotificationTime > 0 && data.LastSeenTime > 0:
		hasNew = data.LastNotificationTime > data.LastSeenTime
	case data.LastSeenTime == 0:
		hasNew = data.UnreadCount > 0
	}

	return &model.Badge{
		UnreadCount: data.UnreadCount,
		HasNew:      hasNew,
		ShowDot:     data.UnreadCount == 0 && hasNew,
	}
}
