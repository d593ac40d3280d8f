package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	DB       *pgxpool.Pool
	Accounts AccountStore
}

// Check pings the database so load balancers can tell a dead pool from a
// live one.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "database_unreachable"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// Index greets with the account count, mostly useful as a smoke test.
func (h *HealthHandler) Index(c *fiber.Ctx) error {
	count, err := h.Accounts.Count(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.SendString(fmt.Sprintf("Hello, world! Accounts: %d", count))
}
