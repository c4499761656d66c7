package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kimani145/Corner/internal/model"
)

// SurveyRepository 问卷数据访问
// Answers 以 JSONB 存储
type SurveyRepository struct {
	db *pgxpool.Pool
}

// NewSurveyRepository 创建问卷仓库
func NewSurveyRepository(db *pgxpool.Pool) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// Create 创建问卷记录
func (r *SurveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	answersJSON, err := json.Marshal(survey.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	query := `
		INSERT INTO surveys (id, user_id, user_email, answers, suggestion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING create_at
	`
	return r.db.QueryRow(ctx, query,
		survey.ID,
		survey.UserID,
		survey.UserEmail,
		answersJSON,
		survey.Suggestion,
	).Scan(&survey.CreateAt)
}

// ListRecent 获取最近的问卷，limit 是看板的采样上限
func (r *SurveyRepository) ListRecent(ctx context.Context, limit int) ([]*model.Survey, error) {
	query := `
		SELECT id, user_id, user_email, answers, suggestion, create_at
		FROM surveys
		ORDER BY create_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surveys []*model.Survey
	for rows.Next() {
		survey := &model.Survey{}
		var answersJSON []byte
		err := rows.Scan(
			&survey.ID,
			&survey.UserID,
			&survey.UserEmail,
			&answersJSON,
			&survey.Suggestion,
			&survey.CreateAt,
		)
		if err != nil {
			return nil, err
		}
		if len(answersJSON) > 0 {
			if err := json.Unmarshal(answersJSON, &survey.Answers); err != nil {
				return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
			}
		}
		surveys = append(surveys, survey)
	}
	return surveys, rows.Err()
}
