package http

import (
	"context"
	"net/http"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/service"
	"github.com/kolmarket/kolmarket/pkg/httpx"
	"github.com/kolmarket/kolmarket/pkg/marketsdk"
)

// callerFromContext assembles the service-level caller identity from the
// verified session in the request context.
func callerFromContext(ctx context.Context) (service.Caller, bool) {
	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		return service.Caller{}, false
	}
	role, _ := httpx.RoleFromContext(ctx)
	return service.Caller{UserID: userID, Role: role}, true
}

func toSDKUser(u domain.User) marketsdk.User {
	return marketsdk.User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toSDKKOL(k domain.KOL) marketsdk.KOL {
	return marketsdk.KOL{
		ID:                    k.ID,
		Name:                  k.Name,
		Email:                 k.Email,
		Category:              k.Category,
		Platform:              k.Platform,
		Followers:             k.Followers,
		EngagementRate:        k.EngagementRate,
		Bio:                   k.Bio,
		ProfileImage:          k.ProfileImage,
		PricePerPost:          k.PricePerPost,
		Verified:              k.Verified,
		InstagramUserID:       k.InstagramUserID,
		InstagramUsername:     k.InstagramUsername,
		ConsentGiven:          k.ConsentGiven,
		ConsentGivenAt:        k.ConsentGivenAt,
		RegistrationCompleted: k.RegistrationCompleted,
		CreatedAt:             k.CreatedAt,
		UpdatedAt:             k.UpdatedAt,
	}
}

func toSDKKOLs(kols []domain.KOL) []marketsdk.KOL {
	out := make([]marketsdk.KOL, 0, len(kols))
	for _, k := range kols {
		out = append(out, toSDKKOL(k))
	}
	return out
}

func toSDKCampaign(c domain.Campaign) marketsdk.Campaign {
	return marketsdk.Campaign{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Budget:      c.Budget,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      c.Status,
		KOLID:       c.KOLID,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toSDKCampaigns(campaigns []domain.Campaign) []marketsdk.Campaign {
	out := make([]marketsdk.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toSDKCampaign(c))
	}
	return out
}

func toSDKInvite(inv domain.InfluencerInvite) marketsdk.Invite {
	return marketsdk.Invite{
		ID:        inv.ID,
		Email:     inv.Email,
		InvitedBy: inv.InvitedBy,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt,
		UsedAt:    inv.UsedAt,
		KOLID:     inv.KOLID,
		CreatedAt: inv.CreatedAt,
	}
}

func toSDKInvites(invites []domain.InfluencerInvite) []marketsdk.Invite {
	out := make([]marketsdk.Invite, 0, len(invites))
	for _, inv := range invites {
		out = append(out, toSDKInvite(inv))
	}
	return out
}

func writeError(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, marketsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}
