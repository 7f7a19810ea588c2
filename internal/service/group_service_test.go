package service

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGroupService_CreateGroup(t *testing.T) {
	ctx := context.Background()

	admin := &models.User{ID: 1, Username: "admin", IsAdmin: true}
	regular := &models.User{ID: 2, Username: "regular"}

	tests := []struct {
		name         string
		caller       *models.User
		input        CreateGroupInput
		expectedCode string
	}{
		{
			name:   "Success",
			caller: admin,
			input:  CreateGroupInput{CallerID: 1, Slug: "test-slug", Title: "Test Group"},
		},
		{
			name:         "Non Admin Forbidden",
			caller:       regular,
			input:        CreateGroupInput{CallerID: 2, Slug: "test-slug", Title: "Test Group"},
			expectedCode: "FORBIDDEN",
		},
		{
			name:         "Blank Title",
			caller:       admin,
			input:        CreateGroupInput{CallerID: 1, Slug: "test-slug", Title: "  "},
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name:         "Bad Slug",
			caller:       admin,
			input:        CreateGroupInput{CallerID: 1, Slug: "Bad Slug!", Title: "Test Group"},
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name:         "Reserved Slug",
			caller:       admin,
			input:        CreateGroupInput{CallerID: 1, Slug: "admin", Title: "Test Group"},
			expectedCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			groupRepo := new(MockGroupRepository)
			userRepo.On("GetByID", mock.Anything, tt.caller.ID).Return(tt.caller, nil)
			if tt.expectedCode == "" {
				groupRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
			}
			svc := NewGroupService(groupRepo, userRepo)

			group, err := svc.CreateGroup(ctx, tt.input)
			if tt.expectedCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.input.Slug, group.Slug)
				groupRepo.AssertExpectations(t)
			} else {
				require.Error(t, err)
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.expectedCode, appErr.Code)
				groupRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}
