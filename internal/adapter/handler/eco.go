package handler

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Coca162/Denarius/internal/core/domain"
)

type EcoHandler struct {
	Accounts AccountStore
	Ledger   TransferStore

	// Hooks and WebhookURL are optional; transfers are announced to the
	// configured receiver when both are set.
	Hooks      WebhookEnqueuer
	WebhookURL string
}

func (h *EcoHandler) Balance(c *fiber.Ctx) error {
	id, err := domain.ParseKey(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	balance, err := h.Accounts.Balance(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.SendString(balance.String())
}

// Print mints money into an account, any sign, no audit record.
func (h *EcoHandler) Print(c *fiber.Ctx) error {
	id, err := domain.ParseKey(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	amount, err := strconv.ParseInt(c.Params("amount"), 10, 64)
	if err != nil {
		return respondError(c, domain.InvalidInput("could not parse an amount from string: "+err.Error()))
	}

	if err := h.Accounts.Mint(c.Context(), id, amount); err != nil {
		return respondError(c, err)
	}

	slog.Info("money printed", "account_id", domain.FormatKey(id), "amount", amount)

	return c.SendString("Printed money!")
}

// Payment runs the transfer protocol between the two accounts named in the
// query string.
func (h *EcoHandler) Payment(c *fiber.Ctx) error {
	from, err := domain.ParseKey(c.Query("from"))
	if err != nil {
		return respondError(c, err)
	}

	to, err := domain.ParseKey(c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}

	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil {
		return respondError(c, domain.InvalidInput("could not parse an amount from string: "+err.Error()))
	}

	force := c.QueryBool("force")

	recordID, err := h.Ledger.Transfer(c.Context(), from, to, amount, force)
	if err != nil {
		return respondError(c, err)
	}

	slog.Info("payment completed",
		"record_id", domain.FormatKey(recordID),
		"from", domain.FormatKey(from),
		"to", domain.FormatKey(to),
		"amount", amount,
		"force", force,
	)

	h.announceTransfer(c, recordID, from, to, amount)

	return c.SendString("Success")
}

// Log serves the audit entries touching one account, newest first.
func (h *EcoHandler) Log(c *fiber.Ctx) error {
	id, err := domain.ParseKey(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	records, err := h.Ledger.Records(c.Context(), id, 10)
	if err != nil {
		return respondError(c, err)
	}

	type entry struct {
		ID     string `json:"id"`
		FromID string `json:"from_id"`
		ToID   string `json:"to_id"`
		Amount int64  `json:"amount"`
	}

	entries := make([]entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, entry{
			ID:     domain.FormatKey(rec.ID),
			FromID: domain.FormatKey(rec.FromID),
			ToID:   domain.FormatKey(rec.ToID),
			Amount: rec.Amount,
		})
	}

	return c.JSON(entries)
}

// announceTransfer queues a webhook job for the completed transfer. Delivery
// is best effort and never fails the payment that triggered it.
func (h *EcoHandler) announceTransfer(c *fiber.Ctx, recordID, from, to uuid.UUID, amount int64) {
	if h.Hooks == nil || h.WebhookURL == "" {
		return
	}

	payload := map[string]any{
		"event": "transfer.completed",
		"data": map[string]any{
			"record_id": domain.FormatKey(recordID),
			"from":      domain.FormatKey(from),
			"to":        domain.FormatKey(to),
			"amount":    amount,
		},
	}

	if err := h.Hooks.Enqueue(c.Context(), h.WebhookURL, payload); err != nil {
		slog.Error("failed to queue transfer webhook", "record_id", domain.FormatKey(recordID), "error", err)
	}
}
