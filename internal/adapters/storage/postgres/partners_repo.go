package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-service/internal/domain/partners"
)

type PartnersRepo struct {
	s *Store
}

const partnerColumns = `id, site_name, site_url, partner_type, rating, photo_url`

func (r *PartnersRepo) List(ctx context.Context) ([]partners.Partner, error) {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	rows, err := r.s.db.QueryContext(ctx, `SELECT `+partnerColumns+` FROM partners ORDER BY site_name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]partners.Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PartnersRepo) GetByID(ctx context.Context, id string) (partners.Partner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return partners.Partner{}, ErrNotFound
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	p, err := scanPartner(r.s.db.QueryRowContext(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id))
	if err != nil {
		return partners.Partner{}, mapErr(err)
	}
	return p, nil
}

func (r *PartnersRepo) Upsert(ctx context.Context, p partners.Partner) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO partners (`+partnerColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			site_url = EXCLUDED.site_url,
			partner_type = EXCLUDED.partner_type,
			rating = EXCLUDED.rating,
			photo_url = EXCLUDED.photo_url
	`,
		p.ID,
		p.SiteName,
		p.SiteURL,
		p.PartnerType,
		p.Rating,
		nullString(p.PhotoURL),
	)
	return mapErr(err)
}

func scanPartner(sc scanner) (partners.Partner, error) {
	var p partners.Partner
	var photo sql.NullString
	if err := sc.Scan(&p.ID, &p.SiteName, &p.SiteURL, &p.PartnerType, &p.Rating, &photo); err != nil {
		return partners.Partner{}, err
	}
	p.PhotoURL = ptrString(photo)
	return p, nil
}

type WatchlistRepo struct {
	s *Store
}

func (r *WatchlistRepo) ListByUser(ctx context.Context, userID string) ([]partners.WatchlistItem, error) {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	rows, err := r.s.db.QueryContext(ctx, `
		SELECT user_id, partner_id, created_at
		FROM partner_watchlist
		WHERE user_id::text = $1
		ORDER BY created_at ASC, partner_id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]partners.WatchlistItem, 0)
	for rows.Next() {
		var it partners.WatchlistItem
		if err := rows.Scan(&it.UserID, &it.PartnerID, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Add: la PK (user_id, partner_id) da 23505 en duplicados y la FK 23503 si
// el partner no existe.
func (r *WatchlistRepo) Add(ctx context.Context, item partners.WatchlistItem) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO partner_watchlist (user_id, partner_id, created_at)
		VALUES ($1,$2,$3)
	`, item.UserID, item.PartnerID, item.CreatedAt)
	return mapErr(err)
}

func (r *WatchlistRepo) Remove(ctx context.Context, userID, partnerID string) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `
		DELETE FROM partner_watchlist WHERE user_id::text = $1 AND partner_id = $2
	`, userID, partnerID))
}
