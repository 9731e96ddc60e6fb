package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kolmarket/kolmarket/internal/market/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, email, token_hash, invited_by, status,
	expires_at, used_at, kol_id, created_at`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.InfluencerInvite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO influencer_invites (
			id, email, token_hash, invited_by, status, expires_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.TokenHash, inv.InvitedBy, inv.Status,
		inv.ExpiresAt, inv.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.InfluencerInvite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM influencer_invites WHERE token_hash = ?`, hash)
	return scanInvite(row)
}

func (r *invitesRepo) GetPendingInviteByEmail(ctx context.Context, email string) (domain.InfluencerInvite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM influencer_invites
		WHERE email = ? AND status = 'pending'
		ORDER BY created_at DESC LIMIT 1`,
		email)
	return scanInvite(row)
}

// MarkInviteExpired only transitions out of pending, so a completed invite
// can never regress to expired.
func (r *invitesRepo) MarkInviteExpired(ctx context.Context, inviteID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE influencer_invites SET status = 'expired'
		WHERE id = ? AND status = 'pending'`,
		inviteID)
	return err
}

// CompleteInvite is the single-winner transition: the status guard means a
// concurrent completion of the same invite affects zero rows and reports
// ErrNotFound to the loser.
func (r *invitesRepo) CompleteInvite(ctx context.Context, inviteID, kolID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE influencer_invites
		SET status = 'completed', used_at = ?, kol_id = ?
		WHERE id = ? AND status = 'pending'`,
		time.Now().UTC(), kolID, inviteID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) ListInvites(ctx context.Context) ([]domain.InfluencerInvite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM influencer_invites ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InfluencerInvite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func scanInvite(row rowScanner) (domain.InfluencerInvite, error) {
	var (
		inv    domain.InfluencerInvite
		usedAt sql.NullTime
		kolID  sql.NullString
	)
	err := row.Scan(
		&inv.ID, &inv.Email, &inv.TokenHash, &inv.InvitedBy, &inv.Status,
		&inv.ExpiresAt, &usedAt, &kolID, &inv.CreatedAt,
	)
	if err != nil {
		return domain.InfluencerInvite{}, mapNotFound(err)
	}

	inv.UsedAt = mapNullTimePtr(usedAt)
	inv.KOLID = mapNullStringPtr(kolID)
	return inv, nil
}
