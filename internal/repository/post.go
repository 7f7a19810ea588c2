// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"quill/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, int64, error)
	ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, int64, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, int64, error)
	ListFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error)
	Update(ctx context.Context, post *models.Post) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID loads one post with its author, group, and comments. Comments are
// ordered oldest first, the way they read on a detail page.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	post.CommentCount = int64(len(post.Comments))
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	return r.listWhere(ctx, r.db.WithContext(ctx).Model(&models.Post{}), limit, offset)
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Post{}).Where("group_id = ?", groupID)
	return r.listWhere(ctx, tx, limit, offset)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Post{}).Where("author_id = ?", authorID)
	return r.listWhere(ctx, tx, limit, offset)
}

// ListFeed returns posts whose author is followed by the given user. A user
// who follows no one simply gets an empty page.
func (r *postRepository) ListFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error) {
	followees := r.db.Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", userID)
	tx := r.db.WithContext(ctx).Model(&models.Post{}).Where("author_id IN (?)", followees)
	return r.listWhere(ctx, tx, limit, offset)
}

// listWhere materializes one page of the filtered query, newest first,
// together with the total row count for the filter.
func (r *postRepository) listWhere(_ context.Context, tx *gorm.DB, limit, offset int) ([]*models.Post, int64, error) {
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := tx.
		Preload("Author").
		Preload("Group").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	// Only the editable columns; author_id and created_at never change.
	return r.db.WithContext(ctx).
		Model(post).
		Updates(map[string]interface{}{
			"text":      post.Text,
			"group_id":  post.GroupID,
			"image_url": post.ImageURL,
		}).Error
}
