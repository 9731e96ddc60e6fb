package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/mail"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/cryptox"
	"github.com/kolmarket/kolmarket/pkg/idx"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("admin role required")
	ErrActiveInviteExists = errors.New("an active invite already exists for this email")
	ErrInviteNotFound     = errors.New("invite not found")
	ErrInviteExpired      = errors.New("invite has expired")
	ErrInviteUsed         = errors.New("invite has already been used")
	ErrConsentRequired    = errors.New("consent is required to complete registration")
)

const (
	// DefaultInviteTTL is how long an invite stays redeemable.
	DefaultInviteTTL = 7 * 24 * time.Hour

	// socialTokenTTL is the fixed lifetime recorded for social access
	// tokens copied onto a profile. Tokens are never refreshed here.
	socialTokenTTL = 60 * 24 * time.Hour

	defaultKOLName     = "New Influencer"
	defaultKOLCategory = "general"
	defaultKOLPlatform = "instagram"
)

// SocialIdentity carries the social-account fields posted back after the
// invitee authorizes with the social platform.
type SocialIdentity struct {
	UserID       string
	Username     string
	AccessToken  string
	Followers    int64
	ProfileImage string
	Bio          string
}

type InviteService struct {
	Store    store.Store
	Notifier mail.Notifier

	// InviteTTL overrides DefaultInviteTTL when positive.
	InviteTTL time.Duration

	// InviteBaseURL is the frontend origin the registration link points at.
	InviteBaseURL string

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// CreateInviteResult is what invite creation hands back to the caller. Token
// is the raw invite token; it is never stored and never recoverable later.
type CreateInviteResult struct {
	Invite    domain.InfluencerInvite
	Token     string
	EmailSent bool
}

// CreateInvite issues a pending invite for an email address and asks the
// Notifier to deliver the registration link. Delivery failure is advisory.
func (s *InviteService) CreateInvite(ctx context.Context, inviterID, email string) (CreateInviteResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return CreateInviteResult{}, ErrInvalidInput
	}

	// 2. Only admins may invite influencers.
	inviter, err := s.Store.Users().GetUserByID(ctx, inviterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CreateInviteResult{}, ErrUnauthorized
		}
		log.Error("failed to fetch inviter", slog.Any("error", err))
		return CreateInviteResult{}, err
	}
	if inviter.Role != domain.RoleAdmin {
		log.Warn("non-admin attempted to create invite",
			slog.String("user_id", inviterID),
			slog.String("role", inviter.Role),
		)
		return CreateInviteResult{}, ErrUnauthorized
	}

	// 3. Generate the random token and its fingerprint.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return CreateInviteResult{}, err
	}
	fingerprint := cryptox.FingerprintToken(token)

	now := s.now()
	invite := domain.InfluencerInvite{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: fingerprint,
		InvitedBy: inviter.ID,
		Status:    domain.InviteStatusPending,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}

	// 4. Check-and-insert in one transaction. A stale pending invite for
	// the same email is flipped to expired so the partial unique index
	// accepts the replacement; an unexpired one is a conflict. The index
	// itself closes the race between concurrent creates.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Invites().GetPendingInviteByEmail(ctx, email)
		switch {
		case err == nil:
			if !existing.Expired(now) {
				return ErrActiveInviteExists
			}
			if err := tx.Invites().MarkInviteExpired(ctx, existing.ID); err != nil {
				return err
			}
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := tx.Invites().CreateInvite(ctx, invite); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrActiveInviteExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return CreateInviteResult{}, err
	}

	// 5. Best-effort email delivery; the invite row stays either way.
	emailSent := true
	if err := s.Notifier.SendInvite(ctx, email, s.registrationLink(token)); err != nil {
		emailSent = false
		log.Warn("invite email delivery failed",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
	}

	log.Info("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("invited_by", inviter.ID),
		slog.Time("expires_at", invite.ExpiresAt),
		slog.Bool("email_sent", emailSent),
	)

	// 6. Return the raw token (not the fingerprint).
	return CreateInviteResult{Invite: invite, Token: token, EmailSent: emailSent}, nil
}

// VerifyToken looks up an invite by its raw token and reports whether it is
// still redeemable. Expiry is applied lazily here: the first read past the
// deadline persists the pending->expired transition, and later reads see
// the stored terminal state without further mutation.
func (s *InviteService) VerifyToken(ctx context.Context, token string) (domain.InfluencerInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if token == "" {
		return domain.InfluencerInvite{}, ErrInvalidInput
	}

	// 2. Fingerprint and look up.
	invite, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InfluencerInvite{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.InfluencerInvite{}, err
	}

	// 3. Terminal states never reopen.
	switch invite.Status {
	case domain.InviteStatusCompleted:
		return domain.InfluencerInvite{}, ErrInviteUsed
	case domain.InviteStatusExpired:
		return domain.InfluencerInvite{}, ErrInviteExpired
	}

	// 4. Lazy expiry on first read past the deadline.
	if invite.Expired(s.now()) {
		if err := s.Store.Invites().MarkInviteExpired(ctx, invite.ID); err != nil {
			log.Error("failed to expire invite",
				slog.String("invite_id", invite.ID),
				slog.Any("error", err),
			)
			return domain.InfluencerInvite{}, err
		}
		return domain.InfluencerInvite{}, ErrInviteExpired
	}

	return invite, nil
}

// CompleteRegistration finalizes a pending invite: it materializes or
// updates the influencer profile for the invite's email, records consent
// and the social identity, and marks the invite completed. The profile
// upsert and the invite transition commit as one unit.
func (s *InviteService) CompleteRegistration(
	ctx context.Context,
	token string,
	consentGiven bool,
	social *SocialIdentity,
) (domain.KOL, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input. Consent is non-negotiable.
	if token == "" {
		return domain.KOL{}, ErrInvalidInput
	}
	if !consentGiven {
		return domain.KOL{}, ErrConsentRequired
	}

	// 2. Re-validate the token, persisting lazy expiry as verification does.
	if _, err := s.VerifyToken(ctx, token); err != nil {
		return domain.KOL{}, err
	}

	fingerprint := cryptox.FingerprintToken(token)
	now := s.now()

	// 3. Upsert the profile and finalize the invite atomically. The
	// status-guarded completion update decides the winner when two
	// callers race on the same token; the loser sees ErrInviteUsed and
	// no second profile write.
	var kol domain.KOL
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		invite, err := tx.Invites().GetInviteByTokenHash(ctx, fingerprint)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return err
		}
		if invite.Status != domain.InviteStatusPending {
			return ErrInviteUsed
		}
		if invite.Expired(now) {
			return ErrInviteExpired
		}

		kol, err = s.upsertKOL(ctx, tx, invite.Email, social, now)
		if err != nil {
			return err
		}

		if err := tx.Invites().CompleteInvite(ctx, invite.ID, kol.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteUsed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.KOL{}, err
	}

	log.Info("influencer registration completed",
		slog.String("kol_id", kol.ID),
		slog.String("email", kol.Email),
	)
	return kol, nil
}

// ListInvites returns every invite, newest first.
func (s *InviteService) ListInvites(ctx context.Context) ([]domain.InfluencerInvite, error) {
	return s.Store.Invites().ListInvites(ctx)
}

// upsertKOL reuses an existing profile with the invite's email or creates a
// new one seeded with defaults, then applies social identity and consent.
func (s *InviteService) upsertKOL(
	ctx context.Context,
	tx store.Tx,
	email string,
	social *SocialIdentity,
	now time.Time,
) (domain.KOL, error) {
	kol, err := tx.KOLs().GetKOLByEmail(ctx, email)
	created := false
	switch {
	case errors.Is(err, store.ErrNotFound):
		created = true
		name := defaultKOLName
		if social != nil && social.Username != "" {
			name = social.Username
		}
		kol = domain.KOL{
			ID:        idx.New().String(),
			Name:      name,
			Email:     email,
			Category:  defaultKOLCategory,
			Platform:  defaultKOLPlatform,
			CreatedAt: now,
		}
	case err != nil:
		return domain.KOL{}, err
	}

	if social != nil {
		kol.Followers = social.Followers
		if social.UserID != "" {
			kol.InstagramUserID = &social.UserID
		}
		if social.Username != "" {
			kol.InstagramUsername = &social.Username
		}
		if social.AccessToken != "" {
			kol.InstagramToken = &social.AccessToken
			expiry := now.Add(socialTokenTTL)
			kol.InstagramTokenExpiresAt = &expiry
		}
		if social.ProfileImage != "" {
			kol.ProfileImage = social.ProfileImage
		}
		if social.Bio != "" {
			kol.Bio = social.Bio
		}
	}

	consentAt := now
	kol.ConsentGiven = true
	kol.ConsentGivenAt = &consentAt
	kol.RegistrationCompleted = true
	kol.UpdatedAt = now

	if created {
		if err := tx.KOLs().CreateKOL(ctx, kol); err != nil {
			return domain.KOL{}, err
		}
		return kol, nil
	}
	if err := tx.KOLs().UpdateKOL(ctx, kol); err != nil {
		return domain.KOL{}, err
	}
	return kol, nil
}

func (s *InviteService) registrationLink(token string) string {
	base := strings.TrimRight(s.InviteBaseURL, "/")
	return base + "/influencer/register?token=" + url.QueryEscape(token)
}

func (s *InviteService) ttl() time.Duration {
	if s.InviteTTL > 0 {
		return s.InviteTTL
	}
	return DefaultInviteTTL
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
