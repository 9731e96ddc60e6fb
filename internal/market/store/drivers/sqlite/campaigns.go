package sqlite

import (
	"context"
	"database/sql"

	"github.com/kolmarket/kolmarket/internal/market/domain"
)

type campaignsRepo struct {
	db dbtx
}

const campaignColumns = `id, title, description, budget, start_date, end_date,
	status, kol_id, user_id, created_at, updated_at`

func (r *campaignsRepo) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaigns (
			id, title, description, budget, start_date, end_date,
			status, kol_id, user_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.Description, c.Budget,
		mapOptionalTime(c.StartDate), mapOptionalTime(c.EndDate),
		c.Status, mapOptionalString(c.KOLID), c.UserID,
		c.CreatedAt, c.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *campaignsRepo) GetCampaignByID(ctx context.Context, id string) (domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id)
	return scanCampaign(row)
}

func (r *campaignsRepo) ListCampaignsByUser(ctx context.Context, userID string) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE user_id = ? ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *campaignsRepo) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE campaigns SET
			title = ?, description = ?, budget = ?, start_date = ?, end_date = ?,
			status = ?, kol_id = ?, updated_at = ?
		WHERE id = ?`,
		c.Title, c.Description, c.Budget,
		mapOptionalTime(c.StartDate), mapOptionalTime(c.EndDate),
		c.Status, mapOptionalString(c.KOLID), c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *campaignsRepo) DeleteCampaign(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *campaignsRepo) CountCampaignsByUser(ctx context.Context, userID string) (int, int, error) {
	var total, active int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0)
		FROM campaigns WHERE user_id = ?`,
		userID).Scan(&total, &active)
	return total, active, err
}

func scanCampaign(row rowScanner) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		startDate sql.NullTime
		endDate   sql.NullTime
		kolID     sql.NullString
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Budget, &startDate, &endDate,
		&c.Status, &kolID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Campaign{}, mapNotFound(err)
	}

	c.StartDate = mapNullTimePtr(startDate)
	c.EndDate = mapNullTimePtr(endDate)
	c.KOLID = mapNullStringPtr(kolID)
	return c, nil
}
