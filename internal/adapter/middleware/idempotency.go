package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Idempotency replays the stored response for a repeated Idempotency-Key, so
// a client retrying a payment after a timeout cannot submit it twice. The
// key is opt-in; requests without the header pass straight through.
//
// The key is reserved with an insert before the handler runs, so two
// concurrent requests carrying the same fresh key cannot both execute: the
// loser of the insert either replays the stored response or, while the
// winner is still in flight, is told to retry. A reservation holds status 0
// until the winner's response is stored.
func Idempotency(db *pgxpool.Pool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("Idempotency-Key")
		if key == "" {
			return c.Next()
		}

		tag, err := db.Exec(c.Context(),
			`INSERT INTO idempotency_keys (key_id, response_status, response_body) VALUES ($1, 0, '') ON CONFLICT DO NOTHING`,
			key)
		if err != nil {
			slog.Error("failed to reserve idempotency key", "key", key, "error", err)
			return c.Next()
		}

		if tag.RowsAffected() == 0 {
			var status int
			var body []byte
			err := db.QueryRow(c.Context(),
				`SELECT response_status, response_body FROM idempotency_keys WHERE key_id = $1`,
				key).Scan(&status, &body)
			if err != nil {
				slog.Error("failed to load stored idempotency response", "key", key, "error", err)
				return c.Next()
			}

			if status == 0 {
				return c.Status(fiber.StatusConflict).SendString("A request with this Idempotency-Key is still in flight")
			}

			slog.Info("idempotency hit, returning stored response", "key", key)
			c.Set("X-Idempotency-Hit", "true")
			return c.Status(status).Send(body)
		}

		if err := c.Next(); err != nil {
			// The response is not final until the app-level error handler
			// has run, so release the reservation instead of storing a
			// half-built response.
			if _, delErr := db.Exec(c.Context(), `DELETE FROM idempotency_keys WHERE key_id = $1`, key); delErr != nil {
				slog.Error("failed to release idempotency key", "key", key, "error", delErr)
			}
			return err
		}

		resStatus := c.Response().StatusCode()
		resBody := c.Response().Body()

		_, updateErr := db.Exec(c.Context(),
			`UPDATE idempotency_keys SET response_status = $2, response_body = $3 WHERE key_id = $1`,
			key, resStatus, resBody)
		if updateErr != nil {
			slog.Error("failed to store idempotency response", "key", key, "error", updateErr)
		}

		return nil
	}
}
