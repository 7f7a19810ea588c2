package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// UserService serves public profile views.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetProfile returns the named user together with post and follow counts.
func (s *UserService) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	postCount, err := s.userRepo.CountPosts(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		User:           *user,
		PostCount:      postCount,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}
