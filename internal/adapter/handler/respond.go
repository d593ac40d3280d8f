package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Coca162/Denarius/internal/core/domain"
)

const genericErrorBody = "An unexpected error has occurred"

// respondError is the one place error kinds turn into HTTP responses.
// Infrastructure failures and anything unclassified get the generic body;
// the detail only ever reaches the server log.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		slog.Error("unexpected error", "error", err, "path", c.Path())
		return c.Status(http.StatusInternalServerError).SendString(genericErrorBody)
	}

	switch appErr.Kind {
	case domain.KindInvalidInput:
		return c.Status(http.StatusBadRequest).SendString(appErr.Message)
	case domain.KindForbidden:
		return c.Status(http.StatusForbidden).SendString(appErr.Message)
	case domain.KindInsufficientFunds:
		return c.Status(http.StatusBadRequest).SendString(appErr.Message)
	case domain.KindAlreadyExists:
		return c.Status(http.StatusBadRequest).SendString(appErr.Message)
	case domain.KindNotFound:
		return c.Status(http.StatusNotFound).SendString(appErr.Message)
	case domain.KindDatabase:
		slog.Error("database error", "error", appErr.Err, "path", c.Path())
		return c.Status(http.StatusInternalServerError).SendString(genericErrorBody)
	default:
		slog.Error("unmapped error kind", "kind", appErr.Kind, "error", appErr, "path", c.Path())
		return c.Status(http.StatusInternalServerError).SendString(genericErrorBody)
	}
}

// ErrorHandler is installed on the fiber app for errors that escape the
// handlers, fiber's own routing errors included.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).SendString(fiberErr.Message)
	}

	slog.Error("unhandled error", "error", err, "path", c.Path())
	return c.Status(http.StatusInternalServerError).SendString(genericErrorBody)
}
