package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kimani145/Corner/internal/model"
)

var (
	ErrMessageNotFound = errors.New("message not found")
)

// MessageRepository 消息数据访问
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository 创建消息仓库
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create 创建消息
// ID 由调用方预先生成并作为主键写入，返回给发送者的就是最终 ID
func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, sender_name, receiver_id, receiver_name, content, read, edited)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING create_at
	`
	return r.db.QueryRow(ctx, query,
		msg.ID,
		msg.SenderID,
		msg.SenderName,
		msg.ReceiverID,
		msg.ReceiverName,
		msg.Content,
		msg.Read,
		msg.Edited,
	).Scan(&msg.CreateAt)
}

// GetByID 通过 ID 获取消息
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	query := `
		SELECT id, sender_id, sender_name, receiver_id, receiver_name, content, read, edited, edited_at, create_at
		FROM messages WHERE id = $1
	`
	msg := &model.Message{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&msg.ID,
		&msg.SenderID,
		&msg.SenderName,
		&msg.ReceiverID,
		&msg.ReceiverName,
		&msg.Content,
		&msg.Read,
		&msg.Edited,
		&msg.EditedAt,
		&msg.CreateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return msg, nil
}

// ListBetween 获取两个用户之间的全部消息，按创建时间升序
// 谓词精确匹配 {a, b} 的两种排列，不会混入第三方的消息
func (r *MessageRepository) ListBetween(ctx context.Context, a, b int64) ([]*model.Message, error) {
	query := `
		SELECT id, sender_id, sender_name, receiver_id, receiver_name, content, read, edited, edited_at, create_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY create_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, a, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		msg := &model.Message{}
		err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.SenderName,
			&msg.ReceiverID,
			&msg.ReceiverName,
			&msg.Content,
			&msg.Read,
			&msg.Edited,
			&msg.EditedAt,
			&msg.CreateAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// MarkRead 将指定接收者的一批消息标记为已读
func (r *MessageRepository) MarkRead(ctx context.Context, receiverID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE messages SET read = TRUE WHERE receiver_id = $1 AND id = ANY($2)`
	_, err := r.db.Exec(ctx, query, receiverID, ids)
	return err
}

// UpdateContent 更新消息内容并打上编辑标记
func (r *MessageRepository) UpdateContent(ctx context.Context, id int64, content string) (*model.Message, error) {
	query := `
		UPDATE messages SET content = $2, edited = TRUE, edited_at = NOW()
		WHERE id = $1
		RETURNING id, sender_id, sender_name, receiver_id, receiver_name, content, read, edited, edited_at, create_at
	`
	msg := &model.Message{}
	err := r.db.QueryRow(ctx, query, id, content).Scan(
		&msg.ID,
		&msg.SenderID,
		&msg.SenderName,
		&msg.ReceiverID,
		&msg.ReceiverName,
		&msg.Content,
		&msg.Read,
		&msg.Edited,
		&msg.EditedAt,
		&msg.CreateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return msg, nil
}

// Delete 硬删除消息
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrMessageNotFound
	}
	return nil
}
