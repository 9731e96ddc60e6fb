package service

import (
	"context"

	"github.com/kolmarket/kolmarket/internal/market/store"
)

type StatsService struct {
	Store store.Store
}

// Stats is the dashboard summary for an authenticated user.
type Stats struct {
	TotalKOLs       int
	TotalCampaigns  int
	ActiveCampaigns int
}

// GetStats counts all profiles plus the caller's campaigns.
func (s *StatsService) GetStats(ctx context.Context, userID string) (Stats, error) {
	totalKOLs, err := s.Store.KOLs().CountKOLs(ctx)
	if err != nil {
		return Stats{}, err
	}

	total, active, err := s.Store.Campaigns().CountCampaignsByUser(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TotalKOLs:       totalKOLs,
		TotalCampaigns:  total,
		ActiveCampaigns: active,
	}, nil
}
