package handlers

import (
	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService         service.AuthService
	FeedService         service.FeedService
	PostService         service.PostService
	SubscriptionService service.SubscriptionService
	GroupRepo           repository.GroupRepository
	PageCache           cache.PageCache
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, pageCache cache.PageCache, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:         service.Auth,
		FeedService:         service.Feed,
		PostService:         service.Post,
		SubscriptionService: service.Subscription,
		GroupRepo:           repo.Group,
		PageCache:           pageCache,
		Cfg:                 config,
		Validate:            validator.New(),
	}
}
