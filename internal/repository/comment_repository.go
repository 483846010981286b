package repository

import (
	"context"
	"fmt"
	"time"
	"yatube/internal/models"

	"github.com/jmoiron/sqlx"
)

type CommentRepositoryImpl struct {
	DB *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{DB: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
        INSERT INTO comments (post_id, author_id, text, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING comment_id
    `

	comment.CreatedAt = time.Now()

	err := r.DB.QueryRowContext(ctx, query,
		comment.PostID, comment.AuthorID, comment.Text, comment.CreatedAt,
	).Scan(&comment.CommentID)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
        SELECT c.comment_id, c.post_id, c.author_id, u.username AS author_username,
               c.text, c.created_at
        FROM comments c
        JOIN users u ON u.user_id = c.author_id
        WHERE c.post_id = $1
        ORDER BY c.created_at DESC, c.comment_id DESC
    `

	var comments []models.Comment
	err := r.DB.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
