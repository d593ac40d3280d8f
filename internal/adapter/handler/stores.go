package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/Coca162/Denarius/internal/core/domain"
)

// The handler layer talks to storage through these interfaces so tests can
// swap in fakes; the pgx repositories in internal/adapter/storage implement
// them.

type PersonStore interface {
	Register(ctx context.Context, discordID domain.DiscordID) (uuid.UUID, error)
	FromDiscord(ctx context.Context, discordID domain.DiscordID) (uuid.UUID, error)
	Info(ctx context.Context, id uuid.UUID) (*domain.PersonInfo, error)
}

type AccountStore interface {
	Balance(ctx context.Context, id uuid.UUID) (domain.Money, error)
	Mint(ctx context.Context, id uuid.UUID, amount int64) error
	Count(ctx context.Context) (int64, error)
}

type TransferStore interface {
	Transfer(ctx context.Context, from, to uuid.UUID, amount int64, force bool) (uuid.UUID, error)
	Records(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.TransferRecord, error)
}

type WebhookEnqueuer interface {
	Enqueue(ctx context.Context, url string, payload any) error
}
