package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUsers persists n fake users. All share the same demo password.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Demo-Password-1"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Email:    fmt.Sprintf("u%d.%s", i, gofakeit.Email()),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(8),
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateGroups persists n fake groups with unique slugs.
func (f *Factory) CreateGroups(n int) ([]*models.Group, error) {
	groups := make([]*models.Group, 0, n)
	for i := 0; i < n; i++ {
		word := strings.ToLower(gofakeit.BuzzWord())
		group := &models.Group{
			Slug:        fmt.Sprintf("%s-%d", strings.ReplaceAll(word, " ", "-"), i),
			Title:       gofakeit.BookTitle(),
			Description: gofakeit.Sentence(12),
		}
		if err := f.db.Create(group).Error; err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// CreatePosts persists n fake posts spread over the given users and groups,
// with creation times scattered over the past 90 days.
func (f *Factory) CreatePosts(n int, users []*models.User, groups []*models.Group) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("cannot seed posts without users")
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := &models.Post{
			Text:     gofakeit.Paragraph(1, 3, 8, "\n"),
			AuthorID: users[f.rand.Intn(len(users))].ID,
		}
		// Roughly two thirds of posts land in a group.
		if len(groups) > 0 && f.rand.Intn(3) != 0 {
			id := groups[f.rand.Intn(len(groups))].ID
			post.GroupID = &id
		}
		if f.rand.Intn(4) == 0 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		}
		post.CreatedAt = f.pastTime(90)

		if err := f.db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// CreateComments attaches up to maxPerPost comments to each post and returns
// the number created.
func (f *Factory) CreateComments(posts []*models.Post, users []*models.User, maxPerPost int) (int, error) {
	if maxPerPost <= 0 || len(users) == 0 {
		return 0, nil
	}

	created := 0
	for _, post := range posts {
		for i := 0; i < f.rand.Intn(maxPerPost+1); i++ {
			comment := &models.Comment{
				Text:      gofakeit.Sentence(10),
				PostID:    post.ID,
				AuthorID:  users[f.rand.Intn(len(users))].ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(i+1) * time.Hour),
			}
			if err := f.db.Create(comment).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// CreateFollowMesh wires up to maxPerUser random follow edges per user and
// returns the number created. Duplicate picks collapse on the unique index.
func (f *Factory) CreateFollowMesh(users []*models.User, maxPerUser int) (int, error) {
	if maxPerUser <= 0 || len(users) < 2 {
		return 0, nil
	}

	created := 0
	for _, user := range users {
		for i := 0; i < f.rand.Intn(maxPerUser+1); i++ {
			target := users[f.rand.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			res := f.db.
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "user_id"}, {Name: "author_id"}},
					DoNothing: true,
				}).
				Create(&models.Follow{UserID: user.ID, AuthorID: target.ID})
			if res.Error != nil {
				return created, res.Error
			}
			created += int(res.RowsAffected)
		}
	}
	return created, nil
}

func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
