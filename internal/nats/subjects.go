package nats

import "strconv"

// NATS Subject 常量定义
const (
	// SubjectBadgePrefix 用户角标推送前缀
	// 完整格式: corner.notify.{user_id}.badge
	SubjectBadgePrefix = "corner.notify."
	SubjectBadgeSuffix = ".badge"
)

// BuildBadgeSubject 构建用户角标推送 Subject
func BuildBadgeSubject(userID int64) string {
	return SubjectBadgePrefix + strconv.FormatInt(userID, 10) + SubjectBadgeSuffix
}
