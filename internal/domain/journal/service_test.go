package journal_test

import (
	"context"
	"testing"

	"pet-care-service/internal/adapters/storage/memory"
	"pet-care-service/internal/domain/journal"
	"pet-care-service/internal/domain/pets"
	"pet-care-service/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*journal.Service, string, string) {
	t.Helper()
	store := memory.New()
	petSvc := pets.NewService(store.Pets(), nil, nil)

	rex, err := petSvc.Create(context.Background(), "alice", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)
	toby, err := petSvc.Create(context.Background(), "bob", pets.CreateInput{Name: "Toby"})
	require.NoError(t, err)

	return journal.NewService(store.Journal(), petSvc.Owners()), rex.ID, toby.ID
}

func TestCreateAndList(t *testing.T) {
	svc, rex, toby := setup(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "alice", journal.CreateInput{PetID: rex, Type: "salud", Title: "Control", Description: "todo ok"})
	require.NoError(t, err)
	assert.False(t, e.CreatedAt.IsZero())

	_, err = svc.Create(ctx, "alice", journal.CreateInput{PetID: toby, Title: "ajeno"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.Create(ctx, "alice", journal.CreateInput{PetID: rex})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	list, err := svc.List(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.ID, list[0].ID)

	list, err = svc.List(ctx, "bob", "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdate_KeepsCreatedAt(t *testing.T) {
	svc, rex, _ := setup(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "alice", journal.CreateInput{PetID: rex, Title: "Control"})
	require.NoError(t, err)

	title := "Control anual"
	got, err := svc.Update(ctx, e.ID, "alice", journal.UpdateInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Control anual", got.Title)
	assert.True(t, e.CreatedAt.Equal(got.CreatedAt))

	stored, err := svc.Get(ctx, e.ID, "alice")
	require.NoError(t, err)
	assert.True(t, e.CreatedAt.Equal(stored.CreatedAt))
}

func TestOwnership(t *testing.T) {
	svc, rex, toby := setup(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "alice", journal.CreateInput{PetID: rex, Title: "Control"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, e.ID, "bob")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.Update(ctx, e.ID, "alice", journal.UpdateInput{PetID: &toby})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(svc.Delete(ctx, e.ID, "bob")))
	require.NoError(t, svc.Delete(ctx, e.ID, "alice"))

	_, err = svc.Get(ctx, e.ID, "alice")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
