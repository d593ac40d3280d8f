package domain

import (
	"encoding/binary"
	"strconv"
)

// DiscordID is the external 64-bit platform identifier for a person. It is
// persisted as an 8-byte big-endian sequence.
type DiscordID uint64

// ParseDiscordID reads the decimal form carried in URL path segments.
func ParseDiscordID(s string) (DiscordID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &Error{Kind: KindInvalidInput, Message: "could not parse a discord id from string", Err: err}
	}
	return DiscordID(id), nil
}

// DiscordIDFromBytes converts the stored 8-byte form back to an id.
func DiscordIDFromBytes(b []byte) (DiscordID, error) {
	if len(b) != 8 {
		return 0, InvalidInput("a stored discord id must be exactly 8 bytes")
	}
	return DiscordID(binary.BigEndian.Uint64(b)), nil
}

// Bytes returns the big-endian form used as the database key.
func (d DiscordID) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(d))
	return b
}

func (d DiscordID) String() string {
	return strconv.FormatUint(uint64(d), 10)
}
