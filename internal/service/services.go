package service

import (
	"github.com/mara/thread-board-website/internal/config"
	"github.com/mara/thread-board-website/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Profile *ProfileService
	Thread  *ThreadService
}

func NewServices(repos *repository.Repositories, feed FeedPublisher, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.Profile, repos.Session, cfg),
		Profile: NewProfileService(repos.Profile),
		Thread:  NewThreadService(repos.Thread, feed),
	}
}
