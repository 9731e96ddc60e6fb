package domain

import "time"

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

// ValidCampaignStatus reports whether s is one of the known statuses.
func ValidCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

type Campaign struct {
	ID          string
	Title       string
	Description string
	Budget      float64
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string
	KOLID       *string // nullable, cleared when the profile is deleted
	UserID      string  // owning user
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
