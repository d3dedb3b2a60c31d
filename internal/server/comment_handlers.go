package server

import (
	"newsdesk/internal/models"
	"newsdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetArticleComments returns all comments for an article, newest first
// @Summary List comments for an article
// @Tags comments
// @Produce json
// @Param article_id path int true "article id"
// @Success 200 {object} map[string][]models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{article_id}/comments [get]
func (s *Server) GetArticleComments(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	comments, err := s.commentService.ListComments(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// CreateComment creates a comment on an article
// @Summary Create a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param article_id path int true "article id"
// @Param comment body object true "username and body"
// @Success 201 {object} map[string]models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{article_id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	var req struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewBadRequestError()
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), id, service.CreateCommentInput{
		Username: req.Username,
		Body:     req.Body,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// UpdateCommentVotes adjusts a comment's vote counter by a signed delta
// @Summary Update comment votes
// @Tags comments
// @Accept json
// @Produce json
// @Param comment_id path int true "comment id"
// @Param body body object true "inc_votes"
// @Success 200 {object} map[string]models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{comment_id} [patch]
func (s *Server) UpdateCommentVotes(c *fiber.Ctx) error {
	id, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}

	delta, err := parseIncVotes(c)
	if err != nil {
		return err
	}

	comment, err := s.commentService.UpdateVotes(c.UserContext(), id, delta)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment removes a comment
// @Summary Delete a comment
// @Tags comments
// @Param comment_id path int true "comment id"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{comment_id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}

	if err := s.commentService.DeleteComment(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
