package service

import (
	"context"
	"log/slog"

	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/repository"
)

// RatingReport 评分统计
type RatingReport struct {
	Distribution map[int]int `json:"distribution"` // 1..5 各档计数，无数据的档位为 0
	Average      float64     `json:"average"`      // 平均分，无样本时为 0
	Total        int         `json:"total"`        // 样本数
}

// DashboardReport 管理端看板报表
// 每次请求基于当前采样全量重算，没有增量路径
type DashboardReport struct {
	Rating       RatingReport   `json:"rating"`
	FeatureUsage map[string]int `json:"feature_usage"` // 多选"常用功能"各项计数
	Satisfaction map[string]int `json:"satisfaction"`  // 单选"满意度"各取值计数
	SurveyTotal  int            `json:"survey_total"`  // 问卷样本数
}

// BuildReport 对已拉取的反馈/问卷做纯归约
func BuildReport(feedbacks []*model.Feedback, surveys []*model.Survey) *DashboardReport {
	report := &DashboardReport{
		Rating: RatingReport{
			Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		},
		FeatureUsage: map[string]int{},
		Satisfaction: map[string]int{},
		SurveyTotal:  len(surveys),
	}

	sum := 0
	for _, fb := range feedbacks {
		if fb.Rating < 1 || fb.Rating > 5 {
			continue
		}
		report.Rating.Distribution[fb.Rating]++
		report.Rating.Total++
		sum += fb.Rating
	}
	if report.Rating.Total > 0 {
		report.Rating.Average = float64(sum) / float64(report.Rating.Total)
	}

	for _, survey := range surveys {
		for _, feature := range answerStrings(survey.Answers[model.AnswerKeyFeatures]) {
			report.FeatureUsage[feature]++
		}
		if satisfaction, ok := survey.Answers[model.AnswerKeySatisfaction].(string); ok && satisfaction != "" {
			report.Satisfaction[satisfaction]++
		}
	}

	return report
}

// answerStrings 把问卷答案归一成字符串列表
// JSON 反序列化后多选答案是 []any，直接构造时可能是 []string 或单个字符串
func answerStrings(answer any) []string {
	switch v := answer.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// DashboardService 管理端看板服务
type DashboardService struct {
	feedbackRepo *repository.FeedbackRepository
	surveyRepo   *repository.SurveyRepository
	sampleSize   int
	logger       *slog.Logger
}

// NewDashboardService 创建看板服务
// sampleSize 是反馈/问卷各自的采样上限（最近 N 条），不是全量统计
func NewDashboardService(feedbackRepo *repository.FeedbackRepository, surveyRepo *repository.SurveyRepository, sampleSize int) *DashboardService {
	return &DashboardService{
		feedbackRepo: feedbackRepo,
		surveyRepo:   surveyRepo,
		sampleSize:   sampleSize,
		logger:       slog.Default(),
	}
}

// Report 拉取最近的反馈/问卷并生成报表
func (s *DashboardService) Report(ctx context.Context) (*DashboardReport, error) {
	feedbacks, err := s.feedbackRepo.ListRecent(ctx, s.sampleSize)
	if err != nil {
		return nil, err
	}

	surveys, err := s.surveyRepo.ListRecent(ctx, s.sampleSize)
	if err != nil {
		return nil, err
	}

	return BuildReport(feedbacks, surveys), nil
}

// RecentFeedback 最近的反馈原始记录
func (s *DashboardService) RecentFeedback(ctx context.Context) ([]*model.Feedback, error) {
	return s.feedbackRepo.ListRecent(ctx, s.sampleSize)
}

// RecentSurveys 最近的问卷原始记录
func (s *DashboardService) RecentSurveys(ctx context.Context) ([]*model.Survey, error) {
	return s.surveyRepo.ListRecent(ctx, s.sampleSize)
}
