package server

import (
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUser(t *testing.T) {
	app, s, db := setupTestServer(t)
	reader, readerToken := createUserWithToken(t, s, db, "reader", false)
	author, _ := createUserWithToken(t, s, db, "author", false)

	t.Run("Anonymous Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/author/follow", "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Follow Twice Is Idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			var result map[string]interface{}
			resp := doJSON(t, app, http.MethodPost, "/api/users/author/follow", readerToken, nil, &result)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, true, result["following"])
			assert.Equal(t, "author", result["username"])
		}

		var count int64
		require.NoError(t, db.Model(&models.Follow{}).
			Where("user_id = ? AND author_id = ?", reader.ID, author.ID).
			Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Self Follow Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/reader/follow", readerToken, nil, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown Target", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/nobody/follow", readerToken, nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Unfollow", func(t *testing.T) {
		var result map[string]interface{}
		resp := doJSON(t, app, http.MethodDelete, "/api/users/author/follow", readerToken, nil, &result)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, result["following"])

		var count int64
		require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)

		// Unfollowing again still succeeds.
		resp = doJSON(t, app, http.MethodDelete, "/api/users/author/follow", readerToken, nil, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestGetFeed(t *testing.T) {
	app, s, db := setupTestServer(t)
	_, readerToken := createUserWithToken(t, s, db, "reader", false)
	followed, _ := createUserWithToken(t, s, db, "followed", false)
	ignored, _ := createUserWithToken(t, s, db, "ignored", false)

	require.NoError(t, db.Create(&models.Post{Text: "from followed", AuthorID: followed.ID}).Error)
	require.NoError(t, db.Create(&models.Post{Text: "from ignored", AuthorID: ignored.ID}).Error)

	t.Run("Anonymous Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/feed", "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Empty Before Following", func(t *testing.T) {
		var page models.PostPage
		resp := doJSON(t, app, http.MethodGet, "/api/feed", readerToken, nil, &page)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int64(0), page.Count)
	})

	t.Run("Shows Followed Authors Only", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/followed/follow", readerToken, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var page models.PostPage
		resp = doJSON(t, app, http.MethodGet, "/api/feed", readerToken, nil, &page)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, page.Posts, 1)
		assert.Equal(t, "from followed", page.Posts[0].Text)
	})
}
