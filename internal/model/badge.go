package model

// NotificationData 用户通知角标数据（存储在 Redis）
type NotificationData struct {
	UnreadCount          int   `json:"unread_count"`           // 未读数
	LastNotificationTime int64 `json:"last_notification_time"` // 最后一次通知时间（毫秒，0 表示没有）
	LastSeenTime         int64 `json:"last_seen_time"`         // 最后一次查看时间（毫秒，0 表示没有）
}

// Badge 下发给客户端的角标状态
// 数字角标优先：unread_count > 0 时展示数字；
// 仅当 unread_count == 0 且 has_new 时展示无数字的圆点
type Badge struct {
	UnreadCount int  `json:"unread_count"`
	HasNew      bool `json:"has_new"`
	ShowDot     bool `json:"show_dot"`
}
