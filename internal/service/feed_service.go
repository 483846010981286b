package service

import (
	"context"
	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/pagination"
	"yatube/internal/repository"
)

// Profile - шапка страницы автора.
type Profile struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	PostCount  int    `json:"postCount"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	IsFollowed bool   `json:"isFollowed"`
}

// FeedService собирает ленты постов по четырем срезам:
// вся лента, группа, автор, подписки. Только чтение, без побочных эффектов.
type FeedService interface {
	Index(ctx context.Context, page int) (pagination.Page, error)
	GroupFeed(ctx context.Context, slug string, page int) (*models.Group, pagination.Page, error)
	ProfileFeed(ctx context.Context, username string, page int, viewerID string) (*Profile, pagination.Page, error)
	FollowFeed(ctx context.Context, viewerID string, page int) (pagination.Page, error)
}

type feedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	cfg        *config.Config
}

func NewFeedService(postRepo repository.PostRepository, groupRepo repository.GroupRepository,
	userRepo repository.UserRepository, followRepo repository.FollowRepository,
	cfg *config.Config) FeedService {
	return &feedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		cfg:        cfg,
	}
}

func (s *feedService) Index(ctx context.Context, page int) (pagination.Page, error) {
	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return pagination.Page{}, err
	}

	return pagination.Paginate(posts, page, s.cfg.PostsPerPage), nil
}

func (s *feedService) GroupFeed(ctx context.Context, slug string, page int) (*models.Group, pagination.Page, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	posts, err := s.postRepo.GetByGroupID(ctx, group.GroupID)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	return group, pagination.Paginate(posts, page, s.cfg.PostsPerPage), nil
}

func (s *feedService) ProfileFeed(ctx context.Context, username string, page int, viewerID string) (*Profile, pagination.Page, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	posts, err := s.postRepo.GetByAuthorID(ctx, author.UserID)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, author.UserID)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	following, err := s.followRepo.CountFollowing(ctx, author.UserID)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	// follow-состояние показываем только авторизованному зрителю
	isFollowed := false
	if viewerID != "" && viewerID != author.UserID {
		isFollowed, err = s.followRepo.Exists(ctx, viewerID, author.UserID)
		if err != nil {
			return nil, pagination.Page{}, err
		}
	}

	profile := &Profile{
		UserID:     author.UserID,
		Username:   author.Username,
		PostCount:  len(posts),
		Followers:  followers,
		Following:  following,
		IsFollowed: isFollowed,
	}

	return profile, pagination.Paginate(posts, page, s.cfg.PostsPerPage), nil
}

// FollowFeed возвращает посты авторов, на которых подписан пользователь.
// Если подписок нет - пустая страница, это не ошибка.
func (s *feedService) FollowFeed(ctx context.Context, viewerID string, page int) (pagination.Page, error) {
	posts, err := s.postRepo.GetByFollower(ctx, viewerID)
	if err != nil {
		return pagination.Page{}, err
	}

	return pagination.Paginate(posts, page, s.cfg.PostsPerPage), nil
}
