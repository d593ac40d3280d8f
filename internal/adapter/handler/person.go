package handler

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Coca162/Denarius/internal/core/domain"
)

type PersonHandler struct {
	Repo PersonStore
}

// Register binds a discord id to a freshly minted account key and returns
// the key in its compact form.
func (h *PersonHandler) Register(c *fiber.Ctx) error {
	discordID, err := domain.ParseDiscordID(c.Params("discord_id"))
	if err != nil {
		return respondError(c, err)
	}

	id, err := h.Repo.Register(c.Context(), discordID)
	if err != nil {
		return respondError(c, err)
	}

	slog.Info("person registered",
		"account_id", domain.FormatKey(id),
		"discord_id", discordID,
		"created_at", domain.KeyTime(id),
	)

	return c.Status(http.StatusCreated).SendString(domain.FormatKey(id))
}

func (h *PersonHandler) FromDiscord(c *fiber.Ctx) error {
	discordID, err := domain.ParseDiscordID(c.Params("discord_id"))
	if err != nil {
		return respondError(c, err)
	}

	id, err := h.Repo.FromDiscord(c.Context(), discordID)
	if err != nil {
		return respondError(c, err)
	}

	return c.SendString(domain.FormatKey(id))
}

func (h *PersonHandler) Get(c *fiber.Ctx) error {
	id, err := domain.ParseKey(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	info, err := h.Repo.Info(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(info)
}
