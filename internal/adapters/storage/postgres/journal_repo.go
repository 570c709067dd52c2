package postgres

import (
	"context"
	"strings"

	"pet-care-service/internal/domain/journal"
)

type JournalRepo struct {
	s *Store
}

const entryColumns = `j.id, j.pet_id, j.entry_type, j.entry_title, j.description, j.created_at`

func (r *JournalRepo) Create(ctx context.Context, e journal.Entry) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, pet_id, entry_type, entry_title, description, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.ID,
		e.PetID,
		e.Type,
		e.Title,
		e.Description,
		e.CreatedAt,
	)
	return mapErr(err)
}

// Update no toca created_at.
func (r *JournalRepo) Update(ctx context.Context, e journal.Entry) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `
		UPDATE journal_entries
		SET
			pet_id = $2,
			entry_type = $3,
			entry_title = $4,
			description = $5
		WHERE id = $1
	`,
		e.ID,
		e.PetID,
		e.Type,
		e.Title,
		e.Description,
	))
}

func (r *JournalRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id::text = $1`, id))
}

func (r *JournalRepo) GetByID(ctx context.Context, id string) (journal.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return journal.Entry{}, ErrNotFound
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	row := r.s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM journal_entries j WHERE j.id::text = $1`, id)
	e, err := scanEntry(row)
	if err != nil {
		return journal.Entry{}, mapErr(err)
	}
	return e, nil
}

func (r *JournalRepo) List(ctx context.Context, f journal.Filter) ([]journal.Entry, error) {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	rows, err := r.s.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM journal_entries j
		JOIN pets p ON p.id = j.pet_id
		WHERE p.owner_user_id::text = $1
		  AND ($2 = '' OR j.pet_id::text = $2)
		ORDER BY j.created_at DESC, j.id ASC
	`, f.OwnerUserID, f.PetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEntry(sc scanner) (journal.Entry, error) {
	var e journal.Entry
	err := sc.Scan(&e.ID, &e.PetID, &e.Type, &e.Title, &e.Description, &e.CreatedAt)
	return e, err
}
