package domain

import "time"

// Cookie is an opaque session credential as handed back by the remote feed.
// All attributes round-trip through persistence unchanged.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Expires  time.Time
	Secure   bool
	HTTPOnly bool
	SameSite string
}

func (c Cookie) Expired(now time.Time) bool {
	if c.Expires.IsZero() {
		return false
	}

	return c.Expires.Before(now)
}
