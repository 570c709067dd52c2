package users_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"pet-care-service/internal/adapters/auth/jwtauth"
	"pet-care-service/internal/adapters/auth/password"
	objmem "pet-care-service/internal/adapters/objectstore/memory"
	"pet-care-service/internal/adapters/storage/memory"
	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/domain/users"
	"pet-care-service/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fixture struct {
	svc     *users.Service
	repo    users.Repository
	objects *objmem.Store
	issuer  *jwtauth.Issuer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.New()
	objects := objmem.New("https://bucket.test")
	issuer, err := jwtauth.NewIssuer(jwtauth.Config{
		Secret:     "test-secret",
		Issuer:     "pet-care-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	require.NoError(t, err)

	svc := users.NewService(store.Users(), password.NewBcrypt(bcrypt.MinCost), issuer,
		media.NewUploader(objects, nil, 1<<20), nil)
	return fixture{svc: svc, repo: store.Users(), objects: objects, issuer: issuer}
}

func signUp(t *testing.T, f fixture, email string) users.User {
	t.Helper()
	u, err := f.svc.SignUp(context.Background(), users.SignUpInput{
		FullName: "Ana Pérez", Email: email, Password: "s3cret!",
	})
	require.NoError(t, err)
	return u
}

func TestSignUp_StoresHashNotPlaintext(t *testing.T) {
	f := newFixture(t)
	u := signUp(t, f, "Ana@Example.com")

	assert.Equal(t, "ana@example.com", u.Email)
	assert.NotEqual(t, "s3cret!", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")))
	assert.Nil(t, u.PhotoURL)
}

func TestSignUp_DuplicateEmailCreatesNothing(t *testing.T) {
	f := newFixture(t)
	first := signUp(t, f, "ana@example.com")

	_, err := f.svc.SignUp(context.Background(), users.SignUpInput{
		FullName: "Otra", Email: "ANA@example.com", Password: "x",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "email")

	got, err := f.repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestSignUp_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SignUp(context.Background(), users.SignUpInput{Email: "not-an-email"})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "full_name")
	assert.Contains(t, ae.Fields, "email")
	assert.Contains(t, ae.Fields, "password")
}

func TestSignUp_WithPhoto(t *testing.T) {
	f := newFixture(t)

	u, err := f.svc.SignUp(context.Background(), users.SignUpInput{
		FullName: "Ana", Email: "ana@example.com", Password: "pw",
		Photo: &media.Photo{Filename: "me.png", Data: pngBytes},
	})
	require.NoError(t, err)
	require.NotNil(t, u.PhotoURL)
	assert.Contains(t, *u.PhotoURL, "user_profile/user_"+u.ID+"/image_")
	assert.Equal(t, 1, f.objects.Len())
}

func TestSignUp_StorageFailureCreatesNothing(t *testing.T) {
	f := newFixture(t)
	f.objects.FailPuts(true)

	_, err := f.svc.SignUp(context.Background(), users.SignUpInput{
		FullName: "Ana", Email: "ana@example.com", Password: "pw",
		Photo: &media.Photo{Data: pngBytes},
	})
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))

	_, err = f.repo.GetByEmail(context.Background(), "ana@example.com")
	assert.Error(t, err)
}

func TestSignIn(t *testing.T) {
	f := newFixture(t)
	u := signUp(t, f, "ana@example.com")
	ctx := context.Background()

	pair, err := f.svc.SignIn(ctx, "  ANA@example.com ", "s3cret!")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	claims, err := f.issuer.Verify(ctx, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	_, errWrong := f.svc.SignIn(ctx, "ana@example.com", "nope")
	_, errUnknown := f.svc.SignIn(ctx, "ghost@example.com", "s3cret!")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(errWrong))
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(errUnknown))
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestRefresh(t *testing.T) {
	f := newFixture(t)
	signUp(t, f, "ana@example.com")
	ctx := context.Background()

	pair, err := f.svc.SignIn(ctx, "ana@example.com", "s3cret!")
	require.NoError(t, err)

	access, err := f.svc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	// un access token no sirve como refresh
	_, err = f.svc.Refresh(ctx, pair.Access)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = f.svc.Refresh(ctx, "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	u := signUp(t, f, "ana@example.com")
	other := signUp(t, f, "beto@example.com")
	ctx := context.Background()

	name := "Ana María"
	blank := ""
	got, err := f.svc.UpdateProfile(ctx, u.ID, users.UpdateProfileInput{FullName: &name, Password: &blank})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.FullName)
	assert.Equal(t, u.PasswordHash, got.PasswordHash, "empty password is ignored")

	taken := "BETO@example.com"
	_, err = f.svc.UpdateProfile(ctx, u.ID, users.UpdateProfileInput{Email: &taken})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	stored, err := f.repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "beto@example.com", stored.Email)

	pw := "new-pass"
	_, err = f.svc.UpdateProfile(ctx, u.ID, users.UpdateProfileInput{Password: &pw})
	require.NoError(t, err)
	_, err = f.svc.SignIn(ctx, "ana@example.com", "new-pass")
	assert.NoError(t, err)
}

func TestPassword_OverBcryptLimitIsValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	long := strings.Repeat("x", 80)

	_, err := f.svc.SignUp(ctx, users.SignUpInput{FullName: "Ana", Email: "ana@example.com", Password: long})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Equal(t, "too long", ae.Fields["password"])
	_, err = f.repo.GetByEmail(ctx, "ana@example.com")
	assert.Error(t, err)

	// 72 bytes todavía entra
	_, err = f.svc.SignUp(ctx, users.SignUpInput{FullName: "Ana", Email: "ana@example.com", Password: strings.Repeat("y", 72)})
	require.NoError(t, err)

	u := signUp(t, f, "beto@example.com")
	_, err = f.svc.UpdateProfile(ctx, u.ID, users.UpdateProfileInput{Password: &long})
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Contains(t, ae.Fields, "password")

	stored, err := f.repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.PasswordHash, stored.PasswordHash)
}

func TestGetProfile_RequiresUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetProfile(context.Background(), "")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = f.svc.GetProfile(context.Background(), "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
