package nats

import (
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/Kimani145/Corner/internal/model"
)

// BadgePublisher 角标推送器
type BadgePublisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

// NewBadgePublisher 创建角标推送器
func NewBadgePublisher(nc *nats.Conn) *BadgePublisher {
	return &BadgePublisher{
		nc:     nc,
		logger: slog.Default(),
	}
}

// PublishBadge 推送角标状态到指定用户的 Subject
func (p *BadgePublisher) PublishBadge(userID int64, badge *model.Badge) error {
	subject := BuildBadgeSubject(userID)
	data, err := json.Marshal(badge)
	if err != nil {
		p.logger.Error("Failed to marshal badge", "error", err)
		return err
	}

	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Error("Failed to publish badge", "userId", userID, "error", err)
		return err
	}

	p.logger.Debug("Published badge", "userId", userID, "subject", subject)
	return nil
}
