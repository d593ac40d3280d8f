package domain

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// NewKey allocates a time-ordered account or transfer key. UUIDv7 keeps keys
// globally unique and roughly monotonic without a central counter.
func NewKey() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, &Error{Kind: KindDatabase, Message: "could not generate a new key", Err: err}
	}
	return id, nil
}

// FormatKey renders a key in the compact 32-hex form used on the wire.
func FormatKey(id uuid.UUID) string {
	return hex.EncodeToString(id[:])
}

// ParseKey accepts both the compact and the hyphenated key form.
func ParseKey(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &Error{Kind: KindInvalidInput, Message: err.Error(), Err: err}
	}
	return id, nil
}

// KeyTime recovers the creation time embedded in a v7 key.
func KeyTime(id uuid.UUID) time.Time {
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec)
}
