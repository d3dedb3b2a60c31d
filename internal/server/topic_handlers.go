package server

import (
	"newsdesk/internal/models"
	"newsdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTopics returns all topics
// @Summary List topics
// @Tags topics
// @Produce json
// @Success 200 {object} map[string][]models.Topic
// @Router /topics [get]
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.topicService.ListTopics(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"topics": topics})
}

// CreateTopic creates a new topic
// @Summary Create a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param topic body object true "slug and description"
// @Success 201 {object} map[string]models.Topic
// @Failure 400 {object} models.ErrorResponse
// @Router /topics [post]
func (s *Server) CreateTopic(c *fiber.Ctx) error {
	var req struct {
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewBadRequestError()
	}

	topic, err := s.topicService.CreateTopic(c.UserContext(), service.CreateTopicInput{
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"topic": topic})
}
