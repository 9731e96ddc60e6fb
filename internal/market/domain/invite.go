package domain

import "time"

const (
	InviteStatusPending   = "pending"
	InviteStatusCompleted = "completed"
	InviteStatusExpired   = "expired"
)

// InfluencerInvite is a time-boxed, single-use registration credential.
// Status only ever moves pending->expired or pending->completed; a
// terminal state never reopens.
type InfluencerInvite struct {
	ID        string
	Email     string
	TokenHash string // SHA-256 fingerprint, never the raw token
	InvitedBy string
	Status    string
	ExpiresAt time.Time
	UsedAt    *time.Time
	KOLID     *string // set on completion
	CreatedAt time.Time
}

// Expired reports whether the invite's deadline has passed at now.
func (i InfluencerInvite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
