package repository

import (
	"context"
	"time"
	"yatube/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error)
	GetByFollower(ctx context.Context, userID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
	CountByAuthor(ctx context.Context, authorID string) (int, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	GetByID(ctx context.Context, groupID int64) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
}

type FollowRepository interface {
	Create(ctx context.Context, userID, authorID string) error
	Delete(ctx context.Context, userID, authorID string) error
	Exists(ctx context.Context, userID, authorID string) (bool, error)
	CountFollowers(ctx context.Context, authorID string) (int, error)
	CountFollowing(ctx context.Context, userID string) (int, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Group   GroupRepository
	Comment CommentRepository
	Follow  FollowRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Group:   NewGroupRepository(db),
		Comment: NewCommentRepository(db),
		Follow:  NewFollowRepository(db),
	}
}
