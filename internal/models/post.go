// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a published text entry in the Quill application.
// The author and creation timestamp are fixed at creation time; only
// text, group, and image are editable afterwards.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	GroupID  *uint  `gorm:"index" json:"group_id,omitempty"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	// CommentCount is not persisted; computed at query time.
	CommentCount int64     `gorm:"-" json:"comment_count"`
	Comments     []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PostPage is one page of a post listing, newest first.
type PostPage struct {
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Count    int64   `json:"count"`
	Posts    []*Post `json:"posts"`
}
