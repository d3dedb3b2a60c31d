package server

import (
	"github.com/gofiber/fiber/v2"

	"newsdesk/internal/models"
)

// parseID extracts a numeric route parameter. A value that does not parse as
// an integer is a bad request before any lookup runs; the distinction between
// "malformed id" (400) and "well-formed but unknown id" (404) is made here.
func parseID(c *fiber.Ctx, param string) (int, error) {
	id, err := c.ParamsInt(param)
	if err != nil {
		return 0, models.NewBadRequestError()
	}
	return id, nil
}

// incVotesRequest is the only recognized patch body for vote updates.
type incVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// parseIncVotes reads the `inc_votes` delta from the request body. A missing
// key or a non-numeric value is a bad request.
func parseIncVotes(c *fiber.Ctx) (int, error) {
	var req incVotesRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, models.NewBadRequestError()
	}
	if req.IncVotes == nil {
		return 0, models.NewBadRequestError()
	}
	return *req.IncVotes, nil
}
