package server

import (
	"errors"

	"newsdesk/internal/middleware"
	"newsdesk/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes classified by the error normalizer.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
)

// ErrorHandler is the app-wide error normalizer. Handlers never classify
// failures themselves; they return errors and this chain picks the first
// applicable mapping. Clients always receive a bare `{msg}` body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1. Store-reported input/constraint violations
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation, pgNotNullViolation:
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Msg: "bad request"})
		case pgForeignKeyViolation:
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Msg: "not found"})
		}
	}

	// 2. Explicit structured failures carry their own status and message
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(models.ErrorResponse{Msg: appErr.Msg})
	}

	// 3. Unmapped record-not-found from the store
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Msg: "not found"})
	}

	// 4. Catch-all; log the detail, never leak it
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		"method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Msg: "internal server error"})
}

// PathNotFound terminates the middleware chain for unmatched routes.
func (s *Server) PathNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Msg: "path not found"})
}
