package calendar_test

import (
	"context"
	"testing"
	"time"

	"pet-care-service/internal/adapters/storage/memory"
	"pet-care-service/internal/domain/calendar"
	"pet-care-service/internal/domain/pets"
	"pet-care-service/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	svc  *calendar.Service
	rex  string
	mia  string
	bobs string
}

func setup(t *testing.T) env {
	t.Helper()
	store := memory.New()
	petSvc := pets.NewService(store.Pets(), nil, nil)
	ctx := context.Background()

	mk := func(owner, name string) string {
		p, err := petSvc.Create(ctx, owner, pets.CreateInput{Name: name})
		require.NoError(t, err)
		return p.ID
	}
	return env{
		svc:  calendar.NewService(store.Calendar(), petSvc.Owners(), nil),
		rex:  mk("alice", "Rex"),
		mia:  mk("alice", "Mia"),
		bobs: mk("bob", "Toby"),
	}
}

func day(d int) *time.Time {
	t := time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestParseTime(t *testing.T) {
	got, err := calendar.ParseTime("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05:00", *got)

	got, err = calendar.ParseTime("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59:59", *got)

	got, err = calendar.ParseTime("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = calendar.ParseTime("25:00")
	assert.Error(t, err)
}

func TestCreate_Validation(t *testing.T) {
	e := setup(t)

	_, err := e.svc.Create(context.Background(), "alice", calendar.CreateInput{StartTime: "later"})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "pet_id")
	assert.Contains(t, ae.Fields, "start_date")
	assert.Contains(t, ae.Fields, "start_time")
	assert.Contains(t, ae.Fields, "event_title")
}

func TestCreate_ForeignPetIsForbidden(t *testing.T) {
	e := setup(t)

	_, err := e.svc.Create(context.Background(), "alice", calendar.CreateInput{
		PetID: e.bobs, Title: "Paseo", StartDate: day(1),
	})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = e.svc.Create(context.Background(), "alice", calendar.CreateInput{
		PetID: "missing", Title: "Paseo", StartDate: day(1),
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestList_OrderedAndFiltered(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	mk := func(pet, title string, d int, at string) {
		_, err := e.svc.Create(ctx, "alice", calendar.CreateInput{PetID: pet, Title: title, StartDate: day(d), StartTime: at})
		require.NoError(t, err)
	}
	mk(e.rex, "tarde", 2, "18:00")
	mk(e.rex, "mañana", 2, "08:00")
	mk(e.mia, "antes", 1, "")
	_, err := e.svc.Create(ctx, "bob", calendar.CreateInput{PetID: e.bobs, Title: "ajeno", StartDate: day(1)})
	require.NoError(t, err)

	all, err := e.svc.List(ctx, "alice", "")
	require.NoError(t, err)
	titles := make([]string, 0, len(all))
	for _, ev := range all {
		titles = append(titles, ev.Title)
	}
	assert.Equal(t, []string{"antes", "mañana", "tarde"}, titles)

	onlyRex, err := e.svc.List(ctx, "alice", e.rex)
	require.NoError(t, err)
	assert.Len(t, onlyRex, 2)

	_, err = e.svc.List(ctx, "alice", e.bobs)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestUpdate(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	ev, err := e.svc.Create(ctx, "alice", calendar.CreateInput{PetID: e.rex, Title: "Vacuna", StartDate: day(3), StartTime: "10:00"})
	require.NoError(t, err)

	done := true
	noTime := ""
	got, err := e.svc.Update(ctx, ev.ID, "alice", calendar.UpdateInput{Completed: &done, StartTime: &noTime, PetID: &e.mia})
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Nil(t, got.StartTime)
	assert.Equal(t, e.mia, got.PetID)
	assert.Equal(t, "Vacuna", got.Title)

	_, err = e.svc.Update(ctx, ev.ID, "alice", calendar.UpdateInput{PetID: &e.bobs})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	title := "hack"
	_, err = e.svc.Update(ctx, ev.ID, "bob", calendar.UpdateInput{Title: &title})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestDelete(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	ev, err := e.svc.Create(ctx, "alice", calendar.CreateInput{PetID: e.rex, Title: "Baño", StartDate: day(3)})
	require.NoError(t, err)

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(e.svc.Delete(ctx, ev.ID, "bob")))
	require.NoError(t, e.svc.Delete(ctx, ev.ID, "alice"))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(e.svc.Delete(ctx, ev.ID, "alice")))
}
