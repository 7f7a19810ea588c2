// Package service implements the business rules and access policy on top of
// the repository layer. Every operation takes the caller's identity
// explicitly; there is no ambient "current user".
package service

import (
	"context"
	"fmt"
	"strings"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"
)

// PostService serves post listings and mutations.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	pageSize  int
}

// CreatePostInput carries the fields of a new post.
type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// EditPostInput carries a post edit. CallerID must match the post's author.
type EditPostInput struct {
	CallerID uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// NewPostService creates a new post service with the given page size.
func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	pageSize int,
) *PostService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		pageSize:  pageSize,
	}
}

// PageSize returns the configured listing page size.
func (s *PostService) PageSize() int {
	return s.pageSize
}

func (s *PostService) pageBounds(page int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	return page, s.pageSize, (page - 1) * s.pageSize
}

// ListPosts returns one page of all posts, newest first. The front page is
// served through the short-lived listing cache; a mutation may be invisible
// here for up to cache.ListTTL.
func (s *PostService) ListPosts(ctx context.Context, page int) (*models.PostPage, error) {
	page, limit, offset := s.pageBounds(page)

	var result models.PostPage
	err := cache.Aside(ctx, cache.ListKey("posts", page), &result, cache.ListTTL, func() error {
		posts, count, fetchErr := s.postRepo.List(ctx, limit, offset)
		if fetchErr != nil {
			return fetchErr
		}
		result = models.PostPage{Page: page, PageSize: limit, Count: count, Posts: posts}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListByGroup returns one page of the group's posts. Unknown slugs are an error.
func (s *PostService) ListByGroup(ctx context.Context, slug string, page int) (*models.Group, *models.PostPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	page, limit, offset := s.pageBounds(page)
	var result models.PostPage
	err = cache.Aside(ctx, cache.ListKey(fmt.Sprintf("group:%s", slug), page), &result, cache.ListTTL, func() error {
		posts, count, fetchErr := s.postRepo.ListByGroup(ctx, group.ID, limit, offset)
		if fetchErr != nil {
			return fetchErr
		}
		result = models.PostPage{Page: page, PageSize: limit, Count: count, Posts: posts}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return group, &result, nil
}

// ListByAuthor returns one page of the author's posts. Unknown usernames are an error.
func (s *PostService) ListByAuthor(ctx context.Context, username string, page int) (*models.User, *models.PostPage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	page, limit, offset := s.pageBounds(page)
	posts, count, err := s.postRepo.ListByAuthor(ctx, author.ID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return author, &models.PostPage{Page: page, PageSize: limit, Count: count, Posts: posts}, nil
}

// ListFeed returns one page of posts by authors the caller follows.
// Following no one yields an empty page, not an error. Feed pages are
// per-user and never cached.
func (s *PostService) ListFeed(ctx context.Context, callerID uint, page int) (*models.PostPage, error) {
	page, limit, offset := s.pageBounds(page)
	posts, count, err := s.postRepo.ListFeed(ctx, callerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &models.PostPage{Page: page, PageSize: limit, Count: count, Posts: posts}, nil
}

// GetPost returns a single post with its comments attached, oldest first.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost validates and inserts a new post. The creation timestamp is
// assigned by the server and never changes afterwards.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, models.NewValidationError("Unknown group")
		}
	}

	post := &models.Post{
		Text:     in.Text,
		ImageURL: in.ImageURL,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// EditPost updates text, group, and image of the caller's own post.
// Author and creation timestamp are left untouched.
func (s *PostService) EditPost(ctx context.Context, in EditPostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.CallerID {
		return nil, models.NewForbiddenError("Only the author can edit a post")
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, models.NewValidationError("Unknown group")
		}
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	post.ImageURL = in.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}
