// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Users  int
	Groups int
	Posts  int
	// CommentsPerPost is the upper bound of comments attached to each post.
	CommentsPerPost int
	// FollowsPerUser is the upper bound of follow edges created per user.
	FollowsPerUser int
	Clean          bool
}

// DefaultOptions returns a small but lively data set.
func DefaultOptions() Options {
	return Options{
		Users:           20,
		Groups:          5,
		Posts:           120,
		CommentsPerPost: 4,
		FollowsPerUser:  6,
		Clean:           true,
	}
}

// Run populates the database with fake users, groups, posts, comments, and
// follow edges.
func Run(db *gorm.DB, opts Options) error {
	if opts.Clean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean database: %w", err)
		}
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.Users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Printf("seeded %d users", len(users))

	groups, err := f.CreateGroups(opts.Groups)
	if err != nil {
		return fmt.Errorf("seed groups: %w", err)
	}
	log.Printf("seeded %d groups", len(groups))

	posts, err := f.CreatePosts(opts.Posts, users, groups)
	if err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	log.Printf("seeded %d posts", len(posts))

	comments, err := f.CreateComments(posts, users, opts.CommentsPerPost)
	if err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}
	log.Printf("seeded %d comments", comments)

	follows, err := f.CreateFollowMesh(users, opts.FollowsPerUser)
	if err != nil {
		return fmt.Errorf("seed follows: %w", err)
	}
	log.Printf("seeded %d follow edges", follows)

	return nil
}

func clean(db *gorm.DB) error {
	// Children first so foreign keys stay satisfied.
	for _, model := range []interface{}{
		&models.Follow{},
		&models.Comment{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
