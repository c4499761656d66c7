package model

import "time"

// 问卷固定题目的 key
const (
	AnswerKeyFeatures     = "features"     // 多选：常用功能
	AnswerKeySatisfaction = "satisfaction" // 单选：满意度
)

// Survey 问卷记录，创建后只读
// Answers 是题目 key 到答案的映射，答案为字符串或字符串数组
type Survey struct {
	ID         int64          `json:"id,string" db:"id"`
	UserID     int64          `json:"userId,string" db:"user_id"`
	UserEmail  string         `json:"userEmail" db:"user_email"`
	Answers    map[string]any `json:"answers" db:"answers"`
	Suggestion string         `json:"suggestion" db:"suggestion"`
	CreateAt   time.Time      `json:"createAt" db:"create_at"`
}
