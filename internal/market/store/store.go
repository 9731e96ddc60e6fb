package store

import (
	"context"
	"errors"

	"github.com/kolmarket/kolmarket/internal/market/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	KOLs() KOLs
	Campaigns() Campaigns
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	// This is the recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type KOLs interface {
	// CreateKOL inserts a new profile. Duplicate email maps to ErrAlreadyExists.
	CreateKOL(ctx context.Context, k domain.KOL) error

	// GetKOLByID returns a profile by id.
	GetKOLByID(ctx context.Context, id string) (domain.KOL, error)

	// GetKOLByEmail returns a profile by its unique email.
	GetKOLByEmail(ctx context.Context, email string) (domain.KOL, error)

	// ListKOLs returns profiles matching the filter, newest first.
	ListKOLs(ctx context.Context, f domain.KOLFilter) ([]domain.KOL, error)

	// UpdateKOL rewrites the full row and bumps updated_at.
	UpdateKOL(ctx context.Context, k domain.KOL) error

	// DeleteKOL removes a profile; campaigns referencing it keep running
	// with kol_id cleared (per schema).
	DeleteKOL(ctx context.Context, id string) error

	// CountKOLs returns the total number of profiles.
	CountKOLs(ctx context.Context) (int, error)
}

type Campaigns interface {
	// CreateCampaign inserts a new campaign (id is ULID).
	CreateCampaign(ctx context.Context, c domain.Campaign) error

	// GetCampaignByID returns a campaign by id.
	GetCampaignByID(ctx context.Context, id string) (domain.Campaign, error)

	// ListCampaignsByUser returns a user's campaigns, newest first.
	ListCampaignsByUser(ctx context.Context, userID string) ([]domain.Campaign, error)

	// UpdateCampaign rewrites the full row and bumps updated_at.
	UpdateCampaign(ctx context.Context, c domain.Campaign) error

	// DeleteCampaign removes a campaign.
	DeleteCampaign(ctx context.Context, id string) error

	// CountCampaignsByUser returns total and active counts for a user.
	CountCampaignsByUser(ctx context.Context, userID string) (total int, active int, err error)
}

type Invites interface {
	// CreateInvite writes a new invite (token_hash is the SHA-256
	// fingerprint of the opaque invite token). A second pending invite
	// for the same email maps to ErrAlreadyExists.
	CreateInvite(ctx context.Context, inv domain.InfluencerInvite) error

	// GetInviteByTokenHash returns an invite by fingerprint regardless of
	// its status; callers decide what pending/expired/completed mean.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.InfluencerInvite, error)

	// GetPendingInviteByEmail returns the most recent pending invite for
	// an email, if one exists.
	GetPendingInviteByEmail(ctx context.Context, email string) (domain.InfluencerInvite, error)

	// MarkInviteExpired flips a pending invite to expired. Flipping an
	// invite that already left pending is a no-op.
	MarkInviteExpired(ctx context.Context, inviteID string) error

	// CompleteInvite marks a pending invite completed with used_at and the
	// resulting kol_id. Returns ErrNotFound when the invite is no longer
	// pending, so concurrent completions observe exactly one winner.
	CompleteInvite(ctx context.Context, inviteID, kolID string) error

	// ListInvites returns all invites, newest first.
	ListInvites(ctx context.Context) ([]domain.InfluencerInvite, error)
}
