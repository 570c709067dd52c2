package forum_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	objmem "pet-care-service/internal/adapters/objectstore/memory"
	"pet-care-service/internal/adapters/storage/memory"
	"pet-care-service/internal/domain/forum"
	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/domain/users"
	"pet-care-service/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func setup(t *testing.T, userIDs ...string) (*forum.Service, *objmem.Store) {
	t.Helper()
	store := memory.New()
	now := time.Now().UTC()
	for _, id := range userIDs {
		require.NoError(t, store.Users().Create(context.Background(), users.User{
			ID: id, FullName: "User " + id, Email: id + "@example.com", PasswordHash: "x",
			CreatedAt: now, UpdatedAt: now,
		}))
	}
	objects := objmem.New("https://bucket.test")
	return forum.NewService(store.Forum(), media.NewUploader(objects, nil, 1<<20), nil), objects
}

func TestCreatePost(t *testing.T) {
	svc, _ := setup(t, "alice")
	ctx := context.Background()

	v, err := svc.CreatePost(ctx, "alice", forum.CreatePostInput{Text: "hola"})
	require.NoError(t, err)
	assert.Nil(t, v.PhotoURL)
	assert.Equal(t, "User alice", v.Author.FullName)
	assert.Equal(t, 0, v.LikesCount)
	assert.False(t, v.HasLiked)
	assert.Empty(t, v.Comments)

	_, err = svc.CreatePost(ctx, "alice", forum.CreatePostInput{Text: "   "})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.CreatePost(ctx, "", forum.CreatePostInput{Text: "x"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestCreatePost_PhotoOnly(t *testing.T) {
	svc, objects := setup(t, "alice")

	v, err := svc.CreatePost(context.Background(), "alice", forum.CreatePostInput{Photo: &media.Photo{Data: pngBytes}})
	require.NoError(t, err)
	require.NotNil(t, v.PhotoURL)
	assert.Contains(t, *v.PhotoURL, "forum_posts/post_"+v.ID+"/image_")
	assert.Equal(t, 1, objects.Len())
}

func TestToggleLike_IsInvolution(t *testing.T) {
	svc, _ := setup(t, "alice", "bob")
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, "alice", forum.CreatePostInput{Text: "hola"})
	require.NoError(t, err)

	st, err := svc.ToggleLike(ctx, p.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, forum.LikeState{Liked: true, LikesCount: 1}, st)

	st, err = svc.ToggleLike(ctx, p.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, forum.LikeState{Liked: false, LikesCount: 0}, st)

	_, err = svc.ToggleLike(ctx, "missing", "bob")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestToggleLike_CountsDistinctUsers(t *testing.T) {
	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, fmt.Sprintf("u%d", i))
	}
	svc, _ := setup(t, ids...)
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, "u0", forum.CreatePostInput{Text: "hola"})
	require.NoError(t, err)
	for _, id := range ids {
		_, err := svc.ToggleLike(ctx, p.ID, id)
		require.NoError(t, err)
	}

	v, err := svc.GetPost(ctx, p.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, v.LikesCount)
	assert.True(t, v.HasLiked)

	_, err = svc.ToggleLike(ctx, p.ID, "u1")
	require.NoError(t, err)
	v, err = svc.GetPost(ctx, p.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, v.LikesCount)
	assert.False(t, v.HasLiked)
}

func TestUpdateAndDeletePost_OwnerOnly(t *testing.T) {
	svc, _ := setup(t, "alice", "bob")
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, "alice", forum.CreatePostInput{Text: "hola"})
	require.NoError(t, err)

	text := "editado"
	_, err = svc.UpdatePost(ctx, p.ID, "bob", forum.UpdatePostInput{Text: &text})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(svc.DeletePost(ctx, p.ID, "bob")))

	v, err := svc.UpdatePost(ctx, p.ID, "alice", forum.UpdatePostInput{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "editado", v.Text)

	// bob todavía puede verlo
	_, err = svc.GetPost(ctx, p.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, p.ID, "alice"))
	_, err = svc.GetPost(ctx, p.ID, "alice")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestComments(t *testing.T) {
	svc, _ := setup(t, "alice", "bob", "carol")
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, "alice", forum.CreatePostInput{Text: "hola"})
	require.NoError(t, err)
	other, err := svc.CreatePost(ctx, "carol", forum.CreatePostInput{Text: "otro"})
	require.NoError(t, err)

	c, err := svc.CreateComment(ctx, p.ID, "bob", " lindo ")
	require.NoError(t, err)
	assert.Equal(t, "lindo", c.Text)
	assert.Equal(t, "User bob", c.AuthorName)

	_, err = svc.CreateComment(ctx, p.ID, "bob", "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// solo el autor edita
	_, err = svc.UpdateComment(ctx, p.ID, c.ID, "alice", "cambiado")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	got, err := svc.UpdateComment(ctx, p.ID, c.ID, "bob", "muy lindo")
	require.NoError(t, err)
	assert.Equal(t, "muy lindo", got.Text)

	// el comentario no pertenece a otro post
	_, err = svc.UpdateComment(ctx, other.ID, c.ID, "bob", "x")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// carol no es autora ni dueña del post
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(svc.DeleteComment(ctx, p.ID, c.ID, "carol")))
	// el dueño del post puede borrar
	require.NoError(t, svc.DeleteComment(ctx, p.ID, c.ID, "alice"))

	list, err := svc.ListComments(ctx, p.ID, "bob")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeletePost_CascadesComments(t *testing.T) {
	svc, _ := setup(t, "alice", "bob")
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, "alice", forum.CreatePostInput{Text: "hola"})
	require.NoError(t, err)
	c, err := svc.CreateComment(ctx, p.ID, "bob", "hey")
	require.NoError(t, err)
	_, err = svc.ToggleLike(ctx, p.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, p.ID, "alice"))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(svc.DeleteComment(ctx, p.ID, c.ID, "bob")))
}

func TestListPosts_HasLikedPerViewer(t *testing.T) {
	svc, _ := setup(t, "alice", "bob")
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, "alice", forum.CreatePostInput{Text: "hola"})
	require.NoError(t, err)
	_, err = svc.ToggleLike(ctx, p.ID, "bob")
	require.NoError(t, err)

	asBob, err := svc.ListPosts(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, asBob, 1)
	assert.True(t, asBob[0].HasLiked)

	anon, err := svc.ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, anon, 1)
	assert.False(t, anon[0].HasLiked)
	assert.Equal(t, 1, anon[0].LikesCount)
}
