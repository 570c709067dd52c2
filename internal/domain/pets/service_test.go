package pets_test

import (
	"context"
	"testing"
	"time"

	objmem "pet-care-service/internal/adapters/objectstore/memory"
	"pet-care-service/internal/adapters/storage/memory"
	"pet-care-service/internal/domain/calendar"
	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/domain/pets"
	"pet-care-service/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func setup() (*pets.Service, *memory.Store, *objmem.Store) {
	store := memory.New()
	objects := objmem.New("https://bucket.test")
	svc := pets.NewService(store.Pets(), media.NewUploader(objects, nil, 1<<20), nil)
	return svc, store, objects
}

func TestCreate_DefaultsAndValidation(t *testing.T) {
	svc, _, _ := setup()
	ctx := context.Background()

	p, err := svc.Create(ctx, "alice", pets.CreateInput{Name: "  Rex ", Breed: "Beagle"})
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, pets.SexUnknown, p.Sex)
	assert.Nil(t, p.PhotoURL)

	_, err = svc.Create(ctx, "alice", pets.CreateInput{Name: "", Sex: "robot"})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "pet_name")
	assert.Contains(t, ae.Fields, "sex")

	_, err = svc.Create(ctx, "", pets.CreateInput{Name: "Rex"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestCreate_WithPhoto(t *testing.T) {
	svc, _, objects := setup()

	p, err := svc.Create(context.Background(), "alice", pets.CreateInput{
		Name: "Rex", Photo: &media.Photo{Data: pngBytes},
	})
	require.NoError(t, err)
	require.NotNil(t, p.PhotoURL)
	assert.Contains(t, *p.PhotoURL, "pet_photos/pet_"+p.ID+"/image_")
	assert.Equal(t, 1, objects.Len())
}

func TestList_OnlyOwnPets(t *testing.T) {
	svc, _, _ := setup()
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", pets.CreateInput{Name: "Mia"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rex", list[0].Name)
}

func TestUpdate_NonOwnerIsForbiddenAndNothingChanges(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()

	p, err := svc.Create(ctx, "alice", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)

	name := "Stolen"
	_, err = svc.Update(ctx, p.ID, "bob", pets.UpdateInput{Name: &name})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	got, err := store.Pets().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)

	_, err = svc.Get(ctx, p.ID, "bob")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(svc.Delete(ctx, p.ID, "bob")))
}

func TestUpdate_PartialAndClearBirthday(t *testing.T) {
	svc, _, _ := setup()
	ctx := context.Background()
	bd := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	p, err := svc.Create(ctx, "alice", pets.CreateInput{Name: "Rex", Breed: "Beagle", Sex: "male", Birthday: &bd})
	require.NoError(t, err)

	breed := "Mestizo"
	got, err := svc.Update(ctx, p.ID, "alice", pets.UpdateInput{Breed: &breed})
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, "Mestizo", got.Breed)
	assert.Equal(t, pets.SexMale, got.Sex)
	require.NotNil(t, got.Birthday)

	got, err = svc.Update(ctx, p.ID, "alice", pets.UpdateInput{BirthdaySet: true})
	require.NoError(t, err)
	assert.Nil(t, got.Birthday)
}

func TestUpdate_UploadFailureKeepsPreviousPhoto(t *testing.T) {
	svc, store, objects := setup()
	ctx := context.Background()

	p, err := svc.Create(ctx, "alice", pets.CreateInput{Name: "Rex", Photo: &media.Photo{Data: pngBytes}})
	require.NoError(t, err)
	before := *p.PhotoURL

	objects.FailPuts(true)
	name := "Rex II"
	_, err = svc.Update(ctx, p.ID, "alice", pets.UpdateInput{Name: &name, Photo: &media.Photo{Data: pngBytes}})
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))

	got, err := store.Pets().GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PhotoURL)
	assert.Equal(t, before, *got.PhotoURL)
	assert.Equal(t, "Rex", got.Name)
}

func TestDelete_CascadesToCalendar(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()

	p, err := svc.Create(ctx, "alice", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)
	cal := calendar.NewService(store.Calendar(), svc.Owners(), nil)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	ev, err := cal.Create(ctx, "alice", calendar.CreateInput{PetID: p.ID, Title: "Vacuna", StartDate: &day})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID, "alice"))

	_, err = store.Calendar().GetByID(ctx, ev.ID)
	assert.Error(t, err)
	_, err = svc.Get(ctx, p.ID, "alice")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
