package server

import (
	"newsdesk/internal/models"
	"newsdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetArticles returns articles, optionally filtered and sorted
// @Summary List articles
// @Tags articles
// @Produce json
// @Param topic query string false "filter by topic slug"
// @Param sort_by query string false "sort column" default(created_at)
// @Param order query string false "asc or desc" default(desc)
// @Success 200 {object} map[string][]models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles [get]
func (s *Server) GetArticles(c *fiber.Ctx) error {
	articles, err := s.articleService.ListArticles(c.UserContext(), service.ListArticlesInput{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"articles": articles})
}

// GetArticle returns a single article with its comment count
// @Summary Get an article
// @Tags articles
// @Produce json
// @Param article_id path int true "article id"
// @Success 200 {object} map[string]models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{article_id} [get]
func (s *Server) GetArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	article, err := s.articleService.GetArticle(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"article": article})
}

// CreateArticle creates a new article
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param article body object true "title, topic, author, body, optional article_img_url"
// @Success 201 {object} map[string]models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles [post]
func (s *Server) CreateArticle(c *fiber.Ctx) error {
	var req struct {
		Title         string `json:"title"`
		Topic         string `json:"topic"`
		Author        string `json:"author"`
		Body          string `json:"body"`
		ArticleImgURL string `json:"article_img_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewBadRequestError()
	}

	article, err := s.articleService.CreateArticle(c.UserContext(), service.CreateArticleInput{
		Title:         req.Title,
		Topic:         req.Topic,
		Author:        req.Author,
		Body:          req.Body,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"article": article})
}

// UpdateArticleVotes adjusts an article's vote counter by a signed delta
// @Summary Update article votes
// @Tags articles
// @Accept json
// @Produce json
// @Param article_id path int true "article id"
// @Param body body object true "inc_votes"
// @Success 200 {object} map[string]models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{article_id} [patch]
func (s *Server) UpdateArticleVotes(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	delta, err := parseIncVotes(c)
	if err != nil {
		return err
	}

	article, err := s.articleService.UpdateVotes(c.UserContext(), id, delta)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"article": article})
}

// DeleteArticle removes an article and its comments
// @Summary Delete an article
// @Tags articles
// @Param article_id path int true "article id"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{article_id} [delete]
func (s *Server) DeleteArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	if err := s.articleService.DeleteArticle(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
