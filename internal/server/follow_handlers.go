// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:username/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	username := c.Params("username")

	if err := s.followService.Follow(c.Context(), currentUserID(c), username); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"following": true,
		"username":  username,
	})
}

// UnfollowUser handles DELETE /api/users/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	username := c.Params("username")

	if err := s.followService.Unfollow(c.Context(), currentUserID(c), username); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"following": false,
		"username":  username,
	})
}
