package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"yatube/internal/models"

	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

type CreatePostRequest struct {
	AuthorID string `json:"author_id"`
	Text     string `json:"text"`
	GroupID  *int64 `json:"group_id"`
}

type UpdatePostRequest struct {
	PostID   int64  `json:"post_id"`
	AuthorID string `json:"author_id"`
	Text     string `json:"text"`
	GroupID  *int64 `json:"group_id"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

// selectPosts - общая часть выборки лент: пост + автор + группа.
// Порядок показа везде один: свежие сверху, при равном времени - больший id.
const selectPosts = `
        SELECT p.post_id, p.author_id, u.username AS author_username,
               p.group_id, g.title AS group_title, g.slug AS group_slug,
               p.text, p.image_url, p.created_at
        FROM posts p
        JOIN users u ON u.user_id = p.author_id
        LEFT JOIN groups g ON g.group_id = p.group_id
`

const orderPosts = ` ORDER BY p.created_at DESC, p.post_id DESC`

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (author_id, group_id, text, image_url, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING post_id
    `

	post.CreatedAt = time.Now()

	err := r.DB.QueryRowContext(ctx, query,
		post.AuthorID, post.GroupID, post.Text, post.ImageURL, post.CreatedAt,
	).Scan(&post.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := selectPosts + ` WHERE p.post_id = $1`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d не найден", postID)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := selectPosts + orderPosts

	var posts []models.Post
	err := r.DB.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error) {
	query := selectPosts + ` WHERE p.group_id = $1` + orderPosts

	var posts []models.Post
	err := r.DB.SelectContext(ctx, &posts, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов группы: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	query := selectPosts + ` WHERE p.author_id = $1` + orderPosts

	var posts []models.Post
	err := r.DB.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByFollower(ctx context.Context, userID string) ([]models.Post, error) {
	query := selectPosts + `
        WHERE p.author_id IN (SELECT f.author_id FROM follows f WHERE f.user_id = $1)` +
		orderPosts

	var posts []models.Post
	err := r.DB.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты подписок: %w", err)
	}

	return posts, nil
}

// Update меняет текст, группу и картинку. Автор и дата создания неизменяемы,
// поэтому author_id участвует только в WHERE.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
        UPDATE posts SET
            text = $1,
            group_id = $2,
            image_url = $3
        WHERE post_id = $4 AND author_id = $5
    `

	result, err := r.DB.ExecContext(ctx, query,
		post.Text, post.GroupID, post.ImageURL, post.PostID, post.AuthorID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пост не найден или у вас нет прав на его изменение")
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.DB.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пост не найден")
	}

	return nil
}

func (r *PostRepositoryImpl) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	var count int
	err := r.DB.GetContext(ctx, &count, query, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете постов автора: %w", err)
	}

	return count, nil
}
