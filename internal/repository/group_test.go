package repository

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_Create_DuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Group{Slug: "taken", Title: "First"}))

	err := repo.Create(ctx, &models.Group{Slug: "taken", Title: "Second"})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestGroupRepository_GetBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	created := createTestGroup(t, db, "test-slug")

	group, err := repo.GetBySlug(ctx, "test-slug")
	require.NoError(t, err)
	assert.Equal(t, created.ID, group.ID)

	_, err = repo.GetBySlug(ctx, "missing")
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestGroupRepository_List_SortedByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	require.NoError(t, db.Create(&models.Group{Slug: "zeta", Title: "Zeta"}).Error)
	require.NoError(t, db.Create(&models.Group{Slug: "alpha", Title: "Alpha"}).Error)

	groups, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Alpha", groups[0].Title)
	assert.Equal(t, "Zeta", groups[1].Title)
}
