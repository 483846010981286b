package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type FollowRepositoryImpl struct {
	DB *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepositoryImpl {
	return &FollowRepositoryImpl{DB: db}
}

// Create вставляет ребро подписки. Повторная подписка гасится
// ON CONFLICT DO NOTHING поверх UNIQUE (user_id, author_id),
// так что одновременные дубли не создают вторую строку.
func (r *FollowRepositoryImpl) Create(ctx context.Context, userID, authorID string) error {
	query := `
        INSERT INTO follows (user_id, author_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, author_id) DO NOTHING
    `

	_, err := r.DB.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *FollowRepositoryImpl) Delete(ctx context.Context, userID, authorID string) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	_, err := r.DB.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

func (r *FollowRepositoryImpl) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	query := `SELECT COUNT(*) FROM follows WHERE user_id = $1 AND author_id = $2`

	var count int
	err := r.DB.GetContext(ctx, &count, query, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return count > 0, nil
}

func (r *FollowRepositoryImpl) CountFollowers(ctx context.Context, authorID string) (int, error) {
	query := `SELECT COUNT(*) FROM follows WHERE author_id = $1`

	var count int
	err := r.DB.GetContext(ctx, &count, query, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете подписчиков: %w", err)
	}

	return count, nil
}

func (r *FollowRepositoryImpl) CountFollowing(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM follows WHERE user_id = $1`

	var count int
	err := r.DB.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете подписок: %w", err)
	}

	return count, nil
}
