package test

import (
	"context"
	"yatube/internal/models"
	"yatube/internal/pagination"
	"yatube/internal/repository"
	"yatube/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) Index(ctx context.Context, page int) (pagination.Page, error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page), args.Error(1)
}

func (m *MockFeedService) GroupFeed(ctx context.Context, slug string, page int) (*models.Group, pagination.Page, error) {
	args := m.Called(ctx, slug, page)
	if args.Get(0) == nil {
		return nil, pagination.Page{}, args.Error(2)
	}
	return args.Get(0).(*models.Group), args.Get(1).(pagination.Page), args.Error(2)
}

func (m *MockFeedService) ProfileFeed(ctx context.Context, username string, page int, viewerID string) (*service.Profile, pagination.Page, error) {
	args := m.Called(ctx, username, page, viewerID)
	if args.Get(0) == nil {
		return nil, pagination.Page{}, args.Error(2)
	}
	return args.Get(0).(*service.Profile), args.Get(1).(pagination.Page), args.Error(2)
}

func (m *MockFeedService) FollowFeed(ctx context.Context, viewerID string, page int) (pagination.Page, error) {
	args := m.Called(ctx, viewerID, page)
	return args.Get(0).(pagination.Page), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req repository.CreatePostRequest, image *service.ImageUpload) (*models.Post, error) {
	args := m.Called(ctx, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest, image *service.ImageUpload) (*models.Post, error) {
	args := m.Called(ctx, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPostDetail(ctx context.Context, postID int64) (*service.PostDetail, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostDetail), args.Error(1)
}

func (m *MockPostService) AddComment(ctx context.Context, postID int64, authorID, text string) (*models.Comment, error) {
	args := m.Called(ctx, postID, authorID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Follow(ctx context.Context, viewerID, username string) error {
	args := m.Called(ctx, viewerID, username)
	return args.Error(0)
}

func (m *MockSubscriptionService) Unfollow(ctx context.Context, viewerID, username string) error {
	args := m.Called(ctx, viewerID, username)
	return args.Error(0)
}

func (m *MockSubscriptionService) IsFollowing(ctx context.Context, viewerID, authorID string) (bool, error) {
	args := m.Called(ctx, viewerID, authorID)
	return args.Bool(0), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

// fakePageCache - кеш страниц в памяти вместо Redis для тестов хендлеров.
type fakePageCache struct {
	entries map[int][]byte
}

func newFakePageCache() *fakePageCache {
	return &fakePageCache{entries: make(map[int][]byte)}
}

func (f *fakePageCache) GetOrCompute(ctx context.Context, pageNumber int, compute func() ([]byte, error)) ([]byte, error) {
	if payload, ok := f.entries[pageNumber]; ok {
		return payload, nil
	}

	payload, err := compute()
	if err != nil {
		return nil, err
	}

	f.entries[pageNumber] = payload
	return payload, nil
}

func (f *fakePageCache) Clear(ctx context.Context) error {
	f.entries = make(map[int][]byte)
	return nil
}
