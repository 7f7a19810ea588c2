package server

import (
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	app, s, db := setupTestServer(t)
	_, adminToken := createUserWithToken(t, s, db, "admin", true)
	_, userToken := createUserWithToken(t, s, db, "mortal", false)

	t.Run("Admin Creates", func(t *testing.T) {
		var group models.Group
		resp := doJSON(t, app, http.MethodPost, "/api/groups", adminToken, map[string]string{
			"slug":        "test-slug",
			"title":       "Test Group",
			"description": "A place for tests",
		}, &group)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "test-slug", group.Slug)
		assert.NotZero(t, group.ID)
	})

	t.Run("Non Admin Forbidden", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/groups", userToken, map[string]string{
			"slug":  "forbidden-slug",
			"title": "Nope",
		}, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Anonymous Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/groups", "", map[string]string{
			"slug":  "anon-slug",
			"title": "Nope",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Duplicate Slug Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/groups", adminToken, map[string]string{
			"slug":  "test-slug",
			"title": "Copycat",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Reserved Slug Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/groups", adminToken, map[string]string{
			"slug":  "api",
			"title": "Sneaky",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetGroupPosts(t *testing.T) {
	app, s, db := setupTestServer(t)
	author, _ := createUserWithToken(t, s, db, "author", false)

	group := &models.Group{Slug: "test-slug", Title: "Test Group"}
	other := &models.Group{Slug: "other-slug", Title: "Other Group"}
	require.NoError(t, db.Create(group).Error)
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&models.Post{Text: "grouped", AuthorID: author.ID, GroupID: &group.ID}).Error)
	require.NoError(t, db.Create(&models.Post{Text: "ungrouped", AuthorID: author.ID}).Error)

	var result struct {
		Group models.Group    `json:"group"`
		Page  models.PostPage `json:"page"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/groups/test-slug/posts", "", nil, &result)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Test Group", result.Group.Title)
	require.Len(t, result.Page.Posts, 1)
	assert.Equal(t, "grouped", result.Page.Posts[0].Text)

	// The other group's page stays empty.
	resp = doJSON(t, app, http.MethodGet, "/api/groups/other-slug/posts", "", nil, &result)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, result.Page.Posts)

	resp = doJSON(t, app, http.MethodGet, "/api/groups/missing/posts", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetGroups(t *testing.T) {
	app, _, db := setupTestServer(t)

	require.NoError(t, db.Create(&models.Group{Slug: "beta", Title: "Beta"}).Error)
	require.NoError(t, db.Create(&models.Group{Slug: "alpha", Title: "Alpha"}).Error)

	var groups []models.Group
	resp := doJSON(t, app, http.MethodGet, "/api/groups", "", nil, &groups)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, groups, 2)
	assert.Equal(t, "Alpha", groups[0].Title)

	var group models.Group
	resp = doJSON(t, app, http.MethodGet, "/api/groups/beta", "", nil, &group)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Beta", group.Title)
}
