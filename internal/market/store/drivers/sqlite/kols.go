package sqlite

import (
	"context"
	"database/sql"

	"github.com/kolmarket/kolmarket/internal/market/domain"
)

type kolsRepo struct {
	db dbtx
}

const kolColumns = `id, name, email, category, platform, followers, engagement_rate,
	bio, profile_image, price_per_post, verified,
	instagram_user_id, instagram_username, instagram_token, instagram_token_expires_at,
	consent_given, consent_given_at, registration_completed,
	created_at, updated_at`

func (r *kolsRepo) CreateKOL(ctx context.Context, k domain.KOL) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kols (
			id, name, email, category, platform, followers, engagement_rate,
			bio, profile_image, price_per_post, verified,
			instagram_user_id, instagram_username, instagram_token, instagram_token_expires_at,
			consent_given, consent_given_at, registration_completed,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		k.ID, k.Name, k.Email, k.Category, k.Platform, k.Followers, k.EngagementRate,
		k.Bio, k.ProfileImage, k.PricePerPost, k.Verified,
		mapOptionalString(k.InstagramUserID), mapOptionalString(k.InstagramUsername),
		mapOptionalString(k.InstagramToken), mapOptionalTime(k.InstagramTokenExpiresAt),
		k.ConsentGiven, mapOptionalTime(k.ConsentGivenAt), k.RegistrationCompleted,
		k.CreatedAt, k.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *kolsRepo) GetKOLByID(ctx context.Context, id string) (domain.KOL, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+kolColumns+` FROM kols WHERE id = ?`, id)
	return scanKOL(row)
}

func (r *kolsRepo) GetKOLByEmail(ctx context.Context, email string) (domain.KOL, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+kolColumns+` FROM kols WHERE email = ?`, email)
	return scanKOL(row)
}

func (r *kolsRepo) ListKOLs(ctx context.Context, f domain.KOLFilter) ([]domain.KOL, error) {
	query := `SELECT ` + kolColumns + ` FROM kols WHERE 1=1`
	var args []any

	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Platform != "" {
		query += ` AND platform = ?`
		args = append(args, f.Platform)
	}
	if f.MinFollowers > 0 {
		query += ` AND followers >= ?`
		args = append(args, f.MinFollowers)
	}
	if f.MaxPrice > 0 {
		query += ` AND price_per_post <= ?`
		args = append(args, f.MaxPrice)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.KOL
	for rows.Next() {
		k, err := scanKOL(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *kolsRepo) UpdateKOL(ctx context.Context, k domain.KOL) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE kols SET
			name = ?, email = ?, category = ?, platform = ?, followers = ?,
			engagement_rate = ?, bio = ?, profile_image = ?, price_per_post = ?,
			verified = ?,
			instagram_user_id = ?, instagram_username = ?, instagram_token = ?,
			instagram_token_expires_at = ?,
			consent_given = ?, consent_given_at = ?, registration_completed = ?,
			updated_at = ?
		WHERE id = ?`,
		k.Name, k.Email, k.Category, k.Platform, k.Followers,
		k.EngagementRate, k.Bio, k.ProfileImage, k.PricePerPost,
		k.Verified,
		mapOptionalString(k.InstagramUserID), mapOptionalString(k.InstagramUsername),
		mapOptionalString(k.InstagramToken), mapOptionalTime(k.InstagramTokenExpiresAt),
		k.ConsentGiven, mapOptionalTime(k.ConsentGivenAt), k.RegistrationCompleted,
		k.UpdatedAt,
		k.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *kolsRepo) DeleteKOL(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM kols WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *kolsRepo) CountKOLs(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kols`).Scan(&n)
	return n, err
}

func scanKOL(row rowScanner) (domain.KOL, error) {
	var (
		k              domain.KOL
		igUserID       sql.NullString
		igUsername     sql.NullString
		igToken        sql.NullString
		igTokenExpires sql.NullTime
		consentAt      sql.NullTime
	)
	err := row.Scan(
		&k.ID, &k.Name, &k.Email, &k.Category, &k.Platform, &k.Followers, &k.EngagementRate,
		&k.Bio, &k.ProfileImage, &k.PricePerPost, &k.Verified,
		&igUserID, &igUsername, &igToken, &igTokenExpires,
		&k.ConsentGiven, &consentAt, &k.RegistrationCompleted,
		&k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		return domain.KOL{}, mapNotFound(err)
	}

	k.InstagramUserID = mapNullStringPtr(igUserID)
	k.InstagramUsername = mapNullStringPtr(igUsername)
	k.InstagramToken = mapNullStringPtr(igToken)
	k.InstagramTokenExpiresAt = mapNullTimePtr(igTokenExpires)
	k.ConsentGivenAt = mapNullTimePtr(consentAt)
	return k, nil
}
