package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-service/internal/domain/pets"
)

type PetsRepo struct {
	s *Store
}

const petColumns = `id, owner_user_id, name, breed, sex, birthday, photo_url, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Breed,
		string(p.Sex),
		toNullDate(p.Birthday),
		nullString(p.PhotoURL),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapErr(err)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			breed = $3,
			sex = $4,
			birthday = $5,
			photo_url = $6,
			updated_at = $7
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		string(p.Sex),
		toNullDate(p.Birthday),
		nullString(p.PhotoURL),
		p.UpdatedAt,
	))
}

// Delete: calendar_events y journal_entries caen por ON DELETE CASCADE.
func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `DELETE FROM pets WHERE id::text = $1`, id))
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	row := r.s.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id::text = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, mapErr(err)
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []pets.Pet{}, nil
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	rows, err := r.s.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_user_id::text = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(sc scanner) (pets.Pet, error) {
	var p pets.Pet
	var sex string
	var bd sql.NullTime
	var photo sql.NullString
	if err := sc.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Breed,
		&sex,
		&bd,
		&photo,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Sex = pets.Sex(sex)
	// birthday es DATE; pgx lo trae como medianoche UTC
	p.Birthday = ptrDate(bd)
	p.PhotoURL = ptrString(photo)
	return p, nil
}
