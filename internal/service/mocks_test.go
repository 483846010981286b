package service

import (
	"context"
	"io"
	"time"
	"yatube/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByFollower(ctx context.Context, userID string) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	args := m.Called(ctx, authorID)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *models.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, groupID int64) (*models.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context) ([]models.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, userID, authorID string) error {
	args := m.Called(ctx, userID, authorID)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, userID, authorID string) error {
	args := m.Called(ctx, userID, authorID)
	return args.Error(0)
}

func (m *MockFollowRepository) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	args := m.Called(ctx, userID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) CountFollowers(ctx context.Context, authorID string) (int, error) {
	args := m.Called(ctx, authorID)
	return args.Int(0), args.Error(1)
}

func (m *MockFollowRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
