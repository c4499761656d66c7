package model

import "time"

// Message 私信消息实体
// 一条消息只属于 {senderId, receiverId} 这一个会话对
type Message struct {
	ID           int64      `json:"id,string" db:"id"`
	SenderID     int64      `json:"senderId,string" db:"sender_id"`
	SenderName   string     `json:"senderName" db:"sender_name"`
	ReceiverID   int64      `json:"receiverId,string" db:"receiver_id"`
	ReceiverName string     `json:"receiverName" db:"receiver_name"`
	Content      string     `json:"content" db:"content"`
	Read         bool       `json:"read" db:"read"`
	Edited       bool       `json:"edited" db:"edited"`
	EditedAt     *time.Time `json:"editedAt,omitempty" db:"edited_at"`
	CreateAt     time.Time  `json:"createAt" db:"create_at"`
}
