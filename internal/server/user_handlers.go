package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers returns all users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} map[string][]models.User
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUserByUsername returns a single user
// @Summary Get a user
// @Tags users
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} map[string]models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username} [get]
func (s *Server) GetUserByUsername(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}
