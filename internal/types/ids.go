package types

import (
	"time"

	"github.com/google/uuid"
)

// TickID identifies one update sweep over the inventory.
// UUIDv7 so ids sort in the order the ticks ran.
type TickID string

// NewTickID generates a UUIDv7 tick identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewTickID() TickID {
	return TickID(uuid.Must(uuid.NewV7()).String())
}

// ParseTickID validates and converts a string to TickID.
func ParseTickID(s string) (TickID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return TickID(s), nil
}

// TickIDTime extracts the timestamp embedded in a UUIDv7 ID.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func TickIDTime(id TickID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
