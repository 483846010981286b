package service

import (
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type Service struct {
	Auth         AuthService
	Feed         FeedService
	Post         PostService
	Subscription SubscriptionService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:         NewAuthService(rep.User, cfg),
		Feed:         NewFeedService(rep.Post, rep.Group, rep.User, rep.Follow, cfg),
		Post:         NewPostService(rep.Post, rep.Group, rep.Comment, storage, cfg),
		Subscription: NewSubscriptionService(rep.Follow, rep.User),
	}
}
