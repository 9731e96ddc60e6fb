package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/idx"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

// ErrNotOwner is returned when a caller touches a campaign they do not own.
// Admins bypass the ownership check.
var ErrNotOwner = errors.New("campaign belongs to another user")

type CampaignService struct {
	Store store.Store
}

// CampaignInput carries the writable campaign fields. Pointer fields
// distinguish "not supplied" from zero on partial updates.
type CampaignInput struct {
	Title       *string
	Description *string
	Budget      *float64
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *string
	KOLID       *string
}

// Caller identifies the authenticated user an operation runs as.
type Caller struct {
	UserID string
	Role   string
}

func (c Caller) admin() bool { return c.Role == domain.RoleAdmin }

// CreateCampaign makes a campaign owned by the caller.
func (s *CampaignService) CreateCampaign(ctx context.Context, caller Caller, in CampaignInput) (domain.Campaign, error) {
	log := slogx.FromContext(ctx)

	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return domain.Campaign{}, ErrInvalidInput
	}
	if in.Status != nil && !domain.ValidCampaignStatus(*in.Status) {
		return domain.Campaign{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	campaign := domain.Campaign{
		ID:        idx.New().String(),
		Title:     strings.TrimSpace(*in.Title),
		Status:    domain.CampaignStatusDraft,
		UserID:    caller.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCampaignInput(&campaign, in)

	if err := s.Store.Campaigns().CreateCampaign(ctx, campaign); err != nil {
		log.Error("failed to create campaign", slog.Any("error", err))
		return domain.Campaign{}, err
	}

	log.Info("campaign created",
		slog.String("campaign_id", campaign.ID),
		slog.String("user_id", caller.UserID),
	)
	return campaign, nil
}

// GetCampaign fetches a campaign the caller owns (or any, for admins).
func (s *CampaignService) GetCampaign(ctx context.Context, caller Caller, id string) (domain.Campaign, error) {
	campaign, err := s.Store.Campaigns().GetCampaignByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	if campaign.UserID != caller.UserID && !caller.admin() {
		return domain.Campaign{}, ErrNotOwner
	}
	return campaign, nil
}

// ListCampaigns returns the caller's campaigns, newest first.
func (s *CampaignService) ListCampaigns(ctx context.Context, caller Caller) ([]domain.Campaign, error) {
	return s.Store.Campaigns().ListCampaignsByUser(ctx, caller.UserID)
}

// UpdateCampaign applies a partial update to a campaign the caller owns.
func (s *CampaignService) UpdateCampaign(ctx context.Context, caller Caller, id string, in CampaignInput) (domain.Campaign, error) {
	if in.Status != nil && !domain.ValidCampaignStatus(*in.Status) {
		return domain.Campaign{}, ErrInvalidInput
	}

	var campaign domain.Campaign
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		campaign, err = tx.Campaigns().GetCampaignByID(ctx, id)
		if err != nil {
			return err
		}
		if campaign.UserID != caller.UserID && !caller.admin() {
			return ErrNotOwner
		}

		applyCampaignInput(&campaign, in)
		campaign.UpdatedAt = time.Now().UTC()

		return tx.Campaigns().UpdateCampaign(ctx, campaign)
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return campaign, nil
}

// DeleteCampaign removes a campaign the caller owns.
func (s *CampaignService) DeleteCampaign(ctx context.Context, caller Caller, id string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		campaign, err := tx.Campaigns().GetCampaignByID(ctx, id)
		if err != nil {
			return err
		}
		if campaign.UserID != caller.UserID && !caller.admin() {
			return ErrNotOwner
		}
		return tx.Campaigns().DeleteCampaign(ctx, id)
	})
}

func applyCampaignInput(c *domain.Campaign, in CampaignInput) {
	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Budget != nil {
		c.Budget = *in.Budget
	}
	if in.StartDate != nil {
		c.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = in.EndDate
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.KOLID != nil {
		if *in.KOLID == "" {
			c.KOLID = nil
		} else {
			c.KOLID = in.KOLID
		}
	}
}
