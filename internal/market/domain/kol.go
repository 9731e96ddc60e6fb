package domain

import "time"

type KOL struct {
	ID             string
	Name           string
	Email          string // unique across profiles
	Category       string
	Platform       string
	Followers      int64
	EngagementRate float64
	Bio            string
	ProfileImage   string
	PricePerPost   float64
	Verified       bool

	// Linked social account, populated on invite completion.
	InstagramUserID         *string
	InstagramUsername       *string
	InstagramToken          *string
	InstagramTokenExpiresAt *time.Time

	ConsentGiven          bool
	ConsentGivenAt        *time.Time
	RegistrationCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// KOLFilter narrows profile listings. Zero values mean "no constraint";
// filters compose with AND.
type KOLFilter struct {
	Category     string
	Platform     string
	MinFollowers int64
	MaxPrice     float64
}
