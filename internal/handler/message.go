package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kimani145/Corner/internal/middleware"
	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/internal/service"
	"github.com/Kimani145/Corner/pkg/response"
)

// SendMessageRequest 发送消息请求
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id,string" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// EditMessageRequest 编辑消息请求
type EditMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// MessageHandler 消息处理器
type MessageHandler struct {
	conversationService *service.ConversationService
}

// NewMessageHandler 创建消息处理器
func NewMessageHandler(conversationService *service.ConversationService) *MessageHandler {
	return &MessageHandler{conversationService: conversationService}
}

// List 获取与指定用户的会话消息
// GET /api/v1/messages/:peerId
func (h *MessageHandler) List(c *gin.Context) {
	peerID, err := strconv.ParseInt(c.Param("peerId"), 10, 64)
	if err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, "invalid peer id")
		return
	}

	userID := middleware.GetUserID(c)

	messages, err := h.conversationService.List(c.Request.Context(), userID, peerID)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"list":  messages,
		"total": len(messages),
	})
}

// Send 发送消息
// POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	userID := middleware.GetUserID(c)

	msg, err := h.conversationService.Send(c.Request.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			response.Error(c, response.CodeEmptyContent)
			return
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(c, response.CodeUserNotFound)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, msg)
}

// Edit 编辑消息
// PUT /api/v1/messages/:id
func (h *MessageHandler) Edit(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, "invalid message id")
		return
	}

	var req EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	userID := middleware.GetUserID(c)

	msg, err := h.conversationService.Edit(c.Request.Context(), userID, messageID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			response.Error(c, response.CodeEmptyContent)
			return
		}
		if errors.Is(err, service.ErrNotMessageSender) {
			response.Error(c, response.CodeNotMessageSender)
			return
		}
		if errors.Is(err, repository.ErrMessageNotFound) {
			response.Error(c, response.CodeMessageNotFound)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, msg)
}

// Delete 删除消息
// DELETE /api/v1/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, "invalid message id")
		return
	}

	userID := middleware.GetUserID(c)

	if err := h.conversationService.Delete(c.Request.Context(), userID, messageID); err != nil {
		if errors.Is(err, service.ErrNotMessageSender) {
			response.Error(c, response.CodeNotMessageSender)
			return
		}
		if errors.Is(err, repository.ErrMessageNotFound) {
			response.Error(c, response.CodeMessageNotFound)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, nil)
}
