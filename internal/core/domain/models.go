package domain

import (
	"github.com/google/uuid"
)

// PersonInfo is the profile shape served to callers.
type PersonInfo struct {
	DiscordID uint64 `json:"discord_id"`
	Balance   int64  `json:"balance"`
}

// TransferRecord is one append-only audit entry, written inside the same
// transaction as the balance mutations it describes.
type TransferRecord struct {
	ID     uuid.UUID
	FromID uuid.UUID
	ToID   uuid.UUID
	Amount int64
}
