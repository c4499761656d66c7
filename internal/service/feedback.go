package service

import (
	"context"
	"errors"

	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/pkg/snowflake"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// SubmitFeedbackRequest 提交反馈请求
type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"max=2000"`
}

// SubmitSurveyRequest 提交问卷请求
type SubmitSurveyRequest struct {
	Answers    map[string]any `json:"answers" binding:"required"`
	Suggestion string         `json:"suggestion" binding:"max=2000"`
}

// FeedbackService 反馈/问卷提交服务
type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
	surveyRepo   *repository.SurveyRepository
	userRepo     *repository.UserRepository
	sfNode       *snowflake.Node
}

// NewFeedbackService 创建反馈服务
func NewFeedbackService(feedbackRepo *repository.FeedbackRepository, surveyRepo *repository.SurveyRepository, userRepo *repository.UserRepository, sfNode *snowflake.Node) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		surveyRepo:   surveyRepo,
		userRepo:     userRepo,
		sfNode:       sfNode,
	}
}

// SubmitFeedback 提交反馈
func (s *FeedbackService) SubmitFeedback(ctx context.Context, userID int64, req *SubmitFeedbackRequest) (*model.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fb := &model.Feedback{
		ID:        s.sfNode.Generate().Int64(),
		UserID:    user.ID,
		UserEmail: user.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, err
	}

	return fb, nil
}

// SubmitSurvey 提交问卷
func (s *FeedbackService) SubmitSurvey(ctx context.Context, userID int64, req *SubmitSurveyRequest) (*model.Survey, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	survey := &model.Survey{
		ID:         s.sfNode.Generate().Int64(),
		UserID:     user.ID,
		UserEmail:  user.Email,
		Answers:    req.Answers,
		Suggestion: req.Suggestion,
	}

	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, err
	}

	return survey, nil
}
