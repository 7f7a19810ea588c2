package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// GroupService manages topical groups. Creation is restricted to
// administrators; everyone may browse.
type GroupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// CreateGroupInput carries the fields of a new group.
type CreateGroupInput struct {
	CallerID    uint
	Slug        string
	Title       string
	Description string
}

// NewGroupService creates a new group service.
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// CreateGroup validates and inserts a new group. The caller must be an admin.
func (s *GroupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	caller, err := s.userRepo.GetByID(ctx, in.CallerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin {
		return nil, models.NewForbiddenError("Only administrators can create groups")
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if err := validation.ValidateGroupSlug(in.Slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	group := &models.Group{
		Slug:        in.Slug,
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetBySlug returns the group with the given slug.
func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

// List returns every group, ordered by title.
func (s *GroupService) List(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.List(ctx)
}
