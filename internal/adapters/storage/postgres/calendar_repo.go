package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-service/internal/domain/calendar"
)

type CalendarRepo struct {
	s *Store
}

// start_time se lee como texto para no depender de cómo el driver mapea TIME.
const eventColumns = `e.id, e.pet_id, e.event_type, e.event_title, e.start_date,
	to_char(e.start_time, 'HH24:MI:SS'), e.description, e.completed, e.created_at, e.updated_at`

func (r *CalendarRepo) Create(ctx context.Context, e calendar.Event) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO calendar_events (
			id, pet_id,
			event_type, event_title,
			start_date, start_time,
			description, completed,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6::time,$7,$8,$9,$10)
	`,
		e.ID,
		e.PetID,
		e.Type,
		e.Title,
		e.StartDate,
		nullString(e.StartTime),
		e.Description,
		e.Completed,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return mapErr(err)
}

func (r *CalendarRepo) Update(ctx context.Context, e calendar.Event) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `
		UPDATE calendar_events
		SET
			pet_id = $2,
			event_type = $3,
			event_title = $4,
			start_date = $5,
			start_time = $6::time,
			description = $7,
			completed = $8,
			updated_at = $9
		WHERE id = $1
	`,
		e.ID,
		e.PetID,
		e.Type,
		e.Title,
		e.StartDate,
		nullString(e.StartTime),
		e.Description,
		e.Completed,
		e.UpdatedAt,
	))
}

func (r *CalendarRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id::text = $1`, id))
}

func (r *CalendarRepo) GetByID(ctx context.Context, id string) (calendar.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return calendar.Event{}, ErrNotFound
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	row := r.s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM calendar_events e WHERE e.id::text = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		return calendar.Event{}, mapErr(err)
	}
	return e, nil
}

func (r *CalendarRepo) List(ctx context.Context, f calendar.Filter) ([]calendar.Event, error) {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	rows, err := r.s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM calendar_events e
		JOIN pets p ON p.id = e.pet_id
		WHERE p.owner_user_id::text = $1
		  AND ($2 = '' OR e.pet_id::text = $2)
		ORDER BY e.start_date ASC, e.start_time ASC NULLS FIRST, e.id ASC
	`, f.OwnerUserID, f.PetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]calendar.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvent(sc scanner) (calendar.Event, error) {
	var e calendar.Event
	var start sql.NullString
	if err := sc.Scan(
		&e.ID,
		&e.PetID,
		&e.Type,
		&e.Title,
		&e.StartDate,
		&start,
		&e.Description,
		&e.Completed,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return calendar.Event{}, err
	}
	e.StartTime = ptrString(start)
	return e, nil
}
