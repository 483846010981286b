package service

import (
	"context"
	"yatube/internal/repository"
)

// SubscriptionService ведет подписки читателей на авторов.
// Подписка на себя и повторная подписка молча ничего не делают.
type SubscriptionService interface {
	Follow(ctx context.Context, viewerID, username string) error
	Unfollow(ctx context.Context, viewerID, username string) error
	IsFollowing(ctx context.Context, viewerID, authorID string) (bool, error)
}

type subscriptionService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewSubscriptionService(followRepo repository.FollowRepository, userRepo repository.UserRepository) SubscriptionService {
	return &subscriptionService{followRepo: followRepo, userRepo: userRepo}
}

func (s *subscriptionService) Follow(ctx context.Context, viewerID, username string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if viewerID == author.UserID {
		return nil
	}

	// дубль гасится на уровне БД, отдельная проверка не нужна
	return s.followRepo.Create(ctx, viewerID, author.UserID)
}

func (s *subscriptionService) Unfollow(ctx context.Context, viewerID, username string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, viewerID, author.UserID)
}

func (s *subscriptionService) IsFollowing(ctx context.Context, viewerID, authorID string) (bool, error) {
	return s.followRepo.Exists(ctx, viewerID, authorID)
}
