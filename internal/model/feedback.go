package model

import "time"

// Feedback 用户反馈，创建后只读
type Feedback struct {
	ID        int64     `json:"id,string" db:"id"`
	UserID    int64     `json:"userId,string" db:"user_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	Rating    int       `json:"rating" db:"rating"` // 1-5
	Comment   string    `json:"comment" db:"comment"`
	CreateAt  time.Time `json:"createAt" db:"create_at"`
}
