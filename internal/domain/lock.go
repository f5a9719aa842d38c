package domain

import "time"

// LockToken is a held reservation lock for one (ground, date, time) slot.
type LockToken struct {
	Key        string
	Value      string
	GroundID   int64
	Date       time.Time
	Time       string
	AcquiredAt time.Time
	TTL        time.Duration
}

// ExpiresAt returns when the lock store drops the lock on its own
func (t *LockToken) ExpiresAt() time.Time {
	return t.AcquiredAt.Add(t.TTL)
}
