package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// FollowService manages follow edges between users.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates an edge from the caller to the named author. Following an
// already-followed author is a no-op success. Self-follow is rejected.
func (s *FollowService) Follow(ctx context.Context, callerID uint, targetUsername string) error {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	if target.ID == callerID {
		return models.NewValidationError("You cannot follow yourself")
	}

	return s.followRepo.Follow(ctx, callerID, target.ID)
}

// Unfollow removes the edge from the caller to the named author.
// Removing an absent edge is a no-op success.
func (s *FollowService) Unfollow(ctx context.Context, callerID uint, targetUsername string) error {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	return s.followRepo.Unfollow(ctx, callerID, target.ID)
}

// IsFollowing reports whether the caller follows the named author.
func (s *FollowService) IsFollowing(ctx context.Context, callerID uint, targetUsername string) (bool, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return false, err
	}
	return s.followRepo.Exists(ctx, callerID, target.ID)
}
