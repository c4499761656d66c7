package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kimani145/Corner/internal/model"
)

// FeedbackRepository 反馈数据访问
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository 创建反馈仓库
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create 创建反馈
func (r *FeedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, user_email, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING create_at
	`
	return r.db.QueryRow(ctx, query,
		fb.ID,
		fb.UserID,
		fb.UserEmail,
		fb.Rating,
		fb.Comment,
	).Scan(&fb.CreateAt)
}

// ListRecent 获取最近的反馈，limit 是看板的采样上限
func (r *FeedbackRepository) ListRecent(ctx context.Context, limit int) ([]*model.Feedback, error) {
	query := `
		SELECT id, user_id, user_email, rating, comment, create_at
		FROM feedback
		ORDER BY create_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*model.Feedback
	for rows.Next() {
		fb := &model.Feedback{}
		err := rows.Scan(
			&fb.ID,
			&fb.UserID,
			&fb.UserEmail,
			&fb.Rating,
			&fb.Comment,
			&fb.CreateAt,
		)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, fb)
	}
	return feedbacks, rows.Err()
}
