package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/internal/market/store/drivers/sqlite"
	"github.com/kolmarket/kolmarket/pkg/idx"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures the last delivered invite instead of sending it.
type recordingNotifier struct {
	email string
	link  string
	calls int
}

func (n *recordingNotifier) SendInvite(_ context.Context, email, link string) error {
	n.email = email
	n.link = link
	n.calls++
	return nil
}

// failingNotifier simulates a mail provider outage.
type failingNotifier struct{}

func (failingNotifier) SendInvite(context.Context, string, string) error {
	return errors.New("smtp unreachable")
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func createTestUser(t *testing.T, st store.Store, role string) domain.User {
	t.Helper()

	user := domain.User{
		ID:           idx.New().String(),
		Email:        idx.New().String() + "@example.com",
		PasswordHash: "hash",
		FullName:     "Test User",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func TestCreateInviteAndVerifyRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	notifier := &recordingNotifier{}
	svc := &InviteService{
		Store:         st,
		Notifier:      notifier,
		InviteBaseURL: "https://app.example",
	}

	result, err := svc.CreateInvite(ctx, admin.ID, "Creator@Example.COM")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.True(t, result.EmailSent)
	require.Equal(t, "creator@example.com", result.Invite.Email)
	require.Equal(t, domain.InviteStatusPending, result.Invite.Status)
	require.Equal(t, admin.ID, result.Invite.InvitedBy)

	// The raw token goes in the mail link, never the fingerprint.
	require.Equal(t, "creator@example.com", notifier.email)
	require.Contains(t, notifier.link, "https://app.example/influencer/register?token=")
	require.Contains(t, notifier.link, result.Token)

	invite, err := svc.VerifyToken(ctx, result.Token)
	require.NoError(t, err)
	require.Equal(t, result.Invite.ID, invite.ID)
	require.Equal(t, "creator@example.com", invite.Email)
}

func TestCreateInviteRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	client := createTestUser(t, st, domain.RoleClient)

	svc := &InviteService{Store: st, Notifier: &recordingNotifier{}}

	_, err := svc.CreateInvite(ctx, client.ID, "creator@example.com")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.CreateInvite(ctx, idx.New().String(), "creator@example.com")
	require.ErrorIs(t, err, ErrUnauthorized)

	admin := createTestUser(t, st, domain.RoleAdmin)
	_, err = svc.CreateInvite(ctx, admin.ID, "   ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateInviteRejectsActivePending(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	svc := &InviteService{Store: st, Notifier: &recordingNotifier{}}

	first, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	_, err = svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.ErrorIs(t, err, ErrActiveInviteExists)

	// A different address is unaffected.
	_, err = svc.CreateInvite(ctx, admin.ID, "other@example.com")
	require.NoError(t, err)

	// The original invite is still redeemable.
	_, err = svc.VerifyToken(ctx, first.Token)
	require.NoError(t, err)
}

func TestCreateInviteReplacesStalePending(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &InviteService{
		Store:    st,
		Notifier: &recordingNotifier{},
		Now:      func() time.Time { return now },
	}

	stale, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	// Past the deadline the pending row no longer blocks a replacement.
	now = now.Add(DefaultInviteTTL + time.Hour)

	fresh, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)
	require.NotEqual(t, stale.Invite.ID, fresh.Invite.ID)

	// The stale invite was flipped to expired, not deleted.
	_, err = svc.VerifyToken(ctx, stale.Token)
	require.ErrorIs(t, err, ErrInviteExpired)

	_, err = svc.VerifyToken(ctx, fresh.Token)
	require.NoError(t, err)
}

func TestVerifyTokenUnknownAndEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &InviteService{Store: st, Notifier: &recordingNotifier{}}

	_, err := svc.VerifyToken(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.VerifyToken(ctx, "no-such-token")
	require.ErrorIs(t, err, ErrInviteNotFound)
}

func TestVerifyTokenLazyExpiryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &InviteService{
		Store:    st,
		Notifier: &recordingNotifier{},
		Now:      func() time.Time { return now },
	}

	result, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	now = now.Add(DefaultInviteTTL + time.Minute)

	// First read past the deadline persists the transition.
	_, err = svc.VerifyToken(ctx, result.Token)
	require.ErrorIs(t, err, ErrInviteExpired)

	// Later reads see the stored terminal state and report the same result.
	_, err = svc.VerifyToken(ctx, result.Token)
	require.ErrorIs(t, err, ErrInviteExpired)

	invites, err := st.Invites().ListInvites(ctx)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, domain.InviteStatusExpired, invites[0].Status)
}

func TestCompleteRegistrationCreatesProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	svc := &InviteService{Store: st, Notifier: &recordingNotifier{}}

	result, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	social := &SocialIdentity{
		UserID:      "17841400000000000",
		Username:    "creator.gram",
		AccessToken: "IGQVJ-token",
		Followers:   12400,
		Bio:         "Food and travel",
	}
	kol, err := svc.CompleteRegistration(ctx, result.Token, true, social)
	require.NoError(t, err)
	require.Equal(t, "creator.gram", kol.Name)
	require.Equal(t, "creator@example.com", kol.Email)
	require.Equal(t, "general", kol.Category)
	require.Equal(t, "instagram", kol.Platform)
	require.Equal(t, int64(12400), kol.Followers)
	require.True(t, kol.ConsentGiven)
	require.NotNil(t, kol.ConsentGivenAt)
	require.True(t, kol.RegistrationCompleted)
	require.NotNil(t, kol.InstagramUserID)
	require.Equal(t, "17841400000000000", *kol.InstagramUserID)
	require.NotNil(t, kol.InstagramToken)
	require.NotNil(t, kol.InstagramTokenExpiresAt)

	// The invite reached its terminal state and records the profile.
	invites, err := st.Invites().ListInvites(ctx)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, domain.InviteStatusCompleted, invites[0].Status)
	require.NotNil(t, invites[0].UsedAt)
	require.NotNil(t, invites[0].KOLID)
	require.Equal(t, kol.ID, *invites[0].KOLID)

	// The profile is queryable through the store.
	stored, err := st.KOLs().GetKOLByID(ctx, kol.ID)
	require.NoError(t, err)
	require.Equal(t, "creator@example.com", stored.Email)
}

func TestCompleteRegistrationWithoutSocialUsesDefaults(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	svc := &InviteService{Store: st, Notifier: &recordingNotifier{}}

	result, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	kol, err := svc.CompleteRegistration(ctx, result.Token, true, nil)
	require.NoError(t, err)
	require.Equal(t, "New Influencer", kol.Name)
	require.Equal(t, "general", kol.Category)
	require.Equal(t, "instagram", kol.Platform)
	require.Nil(t, kol.InstagramUserID)
	require.True(t, kol.ConsentGiven)
}

func TestCompleteRegistrationRequiresConsent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	svc := &InviteService{Store: st, Notifier: &recordingNotifier{}}

	result, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	_, err = svc.CompleteRegistration(ctx, result.Token, false, nil)
	require.ErrorIs(t, err, ErrConsentRequired)

	// Refusing consent spends nothing; the invite stays redeemable.
	_, err = svc.VerifyToken(ctx, result.Token)
	require.NoError(t, err)
}

func TestCompleteRegistrationEnforcesSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	svc := &InviteService{Store: st, Notifier: &recordingNotifier{}}

	result, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	_, err = svc.CompleteRegistration(ctx, result.Token, true, nil)
	require.NoError(t, err)

	_, err = svc.CompleteRegistration(ctx, result.Token, true, nil)
	require.ErrorIs(t, err, ErrInviteUsed)

	_, err = svc.VerifyToken(ctx, result.Token)
	require.ErrorIs(t, err, ErrInviteUsed)

	// Exactly one profile exists for the email.
	kols, err := st.KOLs().ListKOLs(ctx, domain.KOLFilter{})
	require.NoError(t, err)
	require.Len(t, kols, 1)
}

func TestCompleteRegistrationExpiredInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &InviteService{
		Store:    st,
		Notifier: &recordingNotifier{},
		Now:      func() time.Time { return now },
	}

	result, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	now = now.Add(DefaultInviteTTL + time.Minute)

	_, err = svc.CompleteRegistration(ctx, result.Token, true, nil)
	require.ErrorIs(t, err, ErrInviteExpired)

	// No profile was created for the expired invite.
	kols, err := st.KOLs().ListKOLs(ctx, domain.KOLFilter{})
	require.NoError(t, err)
	require.Empty(t, kols)
}

func TestCompleteRegistrationMergesExistingProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	// A profile with the invite's email already exists, e.g. hand-entered
	// by an admin before the influencer was invited.
	existing := domain.KOL{
		ID:        idx.New().String(),
		Name:      "Hand Entered",
		Email:     "creator@example.com",
		Category:  "fashion",
		Platform:  "instagram",
		Followers: 500,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.KOLs().CreateKOL(ctx, existing))

	svc := &InviteService{Store: st, Notifier: &recordingNotifier{}}

	result, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)

	social := &SocialIdentity{Username: "creator.gram", Followers: 12400}
	kol, err := svc.CompleteRegistration(ctx, result.Token, true, social)
	require.NoError(t, err)

	// Same row, enriched in place: curated fields survive, social fields land.
	require.Equal(t, existing.ID, kol.ID)
	require.Equal(t, "Hand Entered", kol.Name)
	require.Equal(t, "fashion", kol.Category)
	require.Equal(t, int64(12400), kol.Followers)
	require.True(t, kol.ConsentGiven)
	require.True(t, kol.RegistrationCompleted)

	kols, err := st.KOLs().ListKOLs(ctx, domain.KOLFilter{})
	require.NoError(t, err)
	require.Len(t, kols, 1)
}

func TestCreateInviteSurvivesMailFailure(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestUser(t, st, domain.RoleAdmin)

	svc := &InviteService{Store: st, Notifier: failingNotifier{}}

	result, err := svc.CreateInvite(ctx, admin.ID, "creator@example.com")
	require.NoError(t, err)
	require.False(t, result.EmailSent)

	// The invite row persisted despite the delivery failure.
	_, err = svc.VerifyToken(ctx, result.Token)
	require.NoError(t, err)
}
