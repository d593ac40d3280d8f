package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every endpoint onto the app. paymentMiddleware runs
// in front of the payment endpoint only (idempotency in production, nothing
// in tests).
func RegisterRoutes(app *fiber.App, person *PersonHandler, eco *EcoHandler, health *HealthHandler, paymentMiddleware ...fiber.Handler) {
	if health != nil {
		app.Get("/", health.Index)
		app.Get("/health", health.Check)
	}

	// The static segment must be registered before the wildcard id route.
	app.Post("/person/register/:discord_id", person.Register)
	app.Get("/person/from_discord/:discord_id", person.FromDiscord)
	app.Get("/person/:id", person.Get)

	app.Get("/eco/balance/:id", eco.Balance)
	app.Get("/eco/log/:id", eco.Log)
	app.Post("/eco/print/:id/:amount", eco.Print)

	paymentHandlers := append(paymentMiddleware, eco.Payment)
	app.Post("/eco/payment", paymentHandlers...)
}
