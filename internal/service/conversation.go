package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/pkg/snowflake"
)

var (
	ErrEmptyContent     = errors.New("message content is empty")
	ErrNotMessageSender = errors.New("only the sender can modify a message")
)

// ConversationService 会话服务
// 负责两个用户之间的消息生命周期：拉取、发送、编辑、删除
type ConversationService struct {
	messageRepo  *repository.MessageRepository
	userRepo     *repository.UserRepository
	badgeService *BadgeService
	sfNode       *snowflake.Node
	logger       *slog.Logger
}

// NewConversationService 创建会话服务
func NewConversationService(
	messageRepo *repository.MessageRepository,
	userRepo *repository.UserRepository,
	badgeService *BadgeService,
	sfNode *snowflake.Node,
) *ConversationService {
	return &ConversationService{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		badgeService: badgeService,
		sfNode:       sfNode,
		logger:       slog.Default(),
	}
}

// List 获取当前用户与对端之间的全部消息，按时间升序
// 返回后异步将发给当前用户的未读消息标记为已读；
// 标记失败只记日志，不影响本次返回（后台操作，不重试）
func (s *ConversationService) List(ctx context.Context, userID, peerID int64) ([]*model.Message, error) {
	messages, err := s.messageRepo.ListBetween(ctx, userID, peerID)
	if err != nil {
		return nil, err
	}

	var unreadIDs []int64
	for _, msg := range messages {
		if msg.ReceiverID == userID && !msg.Read {
			unreadIDs = append(unreadIDs, msg.ID)
		}
	}

	if len(unreadIDs) > 0 {
		go func(ids []int64) {
			markCtx := context.WithoutCancel(ctx)
			if err := s.messageRepo.MarkRead(markCtx, userID, ids); err != nil {
				s.logger.Error("Failed to mark messages as read",
					"userId", userID,
					"peerId", peerID,
					"count", len(ids),
					"error", err)
			}
		}(unreadIDs)
	}

	return messages, nil
}

// Send 发送消息
// ID 在写库前生成并作为主键写入，返回的消息立即可编辑/可删除
func (s *ConversationService) Send(ctx context.Context, senderID, receiverID int64, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	msg := &model.Message{
		ID:           s.sfNode.Generate().Int64(),
		SenderID:     sender.ID,
		SenderName:   sender.Nickname,
		ReceiverID:   receiver.ID,
		ReceiverName: receiver.Nickname,
		Content:      content,
		Read:         false,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// 接收者角标加一并推送，失败只记日志（发送本身已成功）
	if err := s.badgeService.Notify(ctx, receiver.ID); err != nil {
		s.logger.Error("Failed to notify receiver",
			"receiverId", receiver.ID,
			"messageId", msg.ID,
			"error", err)
	}

	s.logger.Debug("Message sent",
		"messageId", msg.ID,
		"senderId", sender.ID,
		"receiverId", receiver.ID)

	return msg, nil
}

// Edit 编辑消息，仅发送者可编辑
func (s *ConversationService) Edit(ctx context.Context, actorID, messageID int64, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != actorID {
		return nil, ErrNotMessageSender
	}

	return s.messageRepo.UpdateContent(ctx, messageID, content)
}

// Delete 删除消息（硬删除），仅发送者可删除
func (s *ConversationService) Delete(ctx context.Context, actorID, messageID int64) error {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != actorID {
		return ErrNotMessageSender
	}

	return s.messageRepo.Delete(ctx, messageID)
}
