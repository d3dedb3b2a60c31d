package server

import (
	_ "embed"
	"encoding/json"

	"newsdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

//go:embed endpoints.json
var endpointsJSON []byte

// GetAPICatalog serves the machine-readable catalog of every endpoint
// @Summary API catalog
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func (s *Server) GetAPICatalog(c *fiber.Ctx) error {
	var endpoints map[string]any
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		return models.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"apis": endpoints})
}
