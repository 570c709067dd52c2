package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-service/internal/domain/users"
)

type UsersRepo struct {
	s *Store
}

const userColumns = `id, full_name, email, password_hash, photo_url, created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.ID,
		u.FullName,
		u.Email,
		u.PasswordHash,
		nullString(u.PhotoURL),
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapErr(err)
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `
		UPDATE users
		SET
			full_name = $2,
			email = $3,
			password_hash = $4,
			photo_url = $5,
			updated_at = $6
		WHERE id = $1
	`,
		u.ID,
		u.FullName,
		u.Email,
		u.PasswordHash,
		nullString(u.PhotoURL),
		u.UpdatedAt,
	))
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, ErrNotFound
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return scanUser(r.s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id::text = $1`, id))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return users.User{}, ErrNotFound
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return scanUser(r.s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	var photo sql.NullString
	if err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&photo,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, mapErr(err)
	}
	u.PhotoURL = ptrString(photo)
	return u, nil
}
