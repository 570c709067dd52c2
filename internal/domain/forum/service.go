package forum

import (
	"context"
	"strings"
	"time"

	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/domain/ownership"
	"pet-care-service/internal/platform/apperr"
	"pet-care-service/internal/platform/logger"
	"pet-care-service/internal/platform/metrics"
	"pet-care-service/internal/ports/repo"

	"github.com/google/uuid"
)

const (
	maxPostLen    = 5000
	maxCommentLen = 2000
)

type Service struct {
	repo   Repository
	photos *media.Uploader
	log    logger.Logger
	now    func() time.Time

	posts         ownership.Resolver // post -> autor
	commentAuthor ownership.Resolver // comentario -> autor
	commentPost   ownership.Resolver // comentario -> post -> autor del post
}

func NewService(r Repository, photos *media.Uploader, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	posts := ownership.Direct("post", r.GetPost, func(p Post) string { return p.UserID })
	return &Service{
		repo:          r,
		photos:        photos,
		log:           log,
		now:           time.Now,
		posts:         posts,
		commentAuthor: ownership.Direct("comment", r.GetComment, func(c Comment) string { return c.UserID }),
		commentPost:   ownership.Via("comment", r.GetComment, func(c Comment) string { return c.PostID }, posts),
	}
}

// ListPosts es público; viewerID vacío para anónimos (has_liked = false).
func (s *Service) ListPosts(ctx context.Context, viewerID string) ([]PostView, error) {
	items, err := s.repo.ListPostViews(ctx, strings.TrimSpace(viewerID))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

type CreatePostInput struct {
	Text  string
	Photo *media.Photo
}

// CreatePost sube la foto (si hay) bajo forum_posts/post_{id} antes del insert.
func (s *Service) CreatePost(ctx context.Context, userID string, in CreatePostInput) (PostView, error) {
	if strings.TrimSpace(userID) == "" {
		return PostView{}, apperr.Unauthorized()
	}
	text := strings.TrimSpace(in.Text)
	if err := checkPost(text, in.Photo != nil); err != nil {
		return PostView{}, err
	}
	if err := s.photos.Validate(in.Photo); err != nil {
		return PostView{}, err
	}

	now := s.now().UTC()
	p := Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var up media.Uploaded
	if in.Photo != nil {
		var err error
		up, err = s.photos.Upload(ctx, media.PostPrefix(p.ID), in.Photo)
		if err != nil {
			return PostView{}, err
		}
		p.PhotoURL = &up.URL
	}

	if err := s.repo.CreatePost(ctx, p); err != nil {
		s.photos.Discard(ctx, up)
		return PostView{}, apperr.Internal(err)
	}
	return s.view(ctx, p.ID, userID)
}

// GetPost requiere usuario autenticado (cualquiera).
func (s *Service) GetPost(ctx context.Context, id, userID string) (PostView, error) {
	if strings.TrimSpace(userID) == "" {
		return PostView{}, apperr.Unauthorized()
	}
	return s.view(ctx, id, userID)
}

type UpdatePostInput struct {
	Text  *string
	Photo *media.Photo
}

func (s *Service) UpdatePost(ctx context.Context, id, userID string, in UpdatePostInput) (PostView, error) {
	if err := ownership.Authorize(ctx, s.posts, id, userID); err != nil {
		return PostView{}, err
	}
	p, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return PostView{}, repo.AsAppErr("post", err)
	}

	if in.Text != nil {
		p.Text = strings.TrimSpace(*in.Text)
	}
	if err := checkPost(p.Text, p.PhotoURL != nil || in.Photo != nil); err != nil {
		return PostView{}, err
	}
	if err := s.photos.Validate(in.Photo); err != nil {
		return PostView{}, err
	}

	var up media.Uploaded
	if in.Photo != nil {
		up, err = s.photos.Upload(ctx, media.PostPrefix(p.ID), in.Photo)
		if err != nil {
			return PostView{}, err
		}
		p.PhotoURL = &up.URL
	}

	p.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdatePost(ctx, p); err != nil {
		s.photos.Discard(ctx, up)
		return PostView{}, repo.AsAppErr("post", err)
	}
	return s.view(ctx, p.ID, userID)
}

func (s *Service) DeletePost(ctx context.Context, id, userID string) error {
	if err := ownership.Authorize(ctx, s.posts, id, userID); err != nil {
		return err
	}
	if err := s.repo.DeletePost(ctx, id); err != nil {
		return repo.AsAppErr("post", err)
	}
	s.log.Info("forum post deleted", map[string]any{"post_id": id, "user_id": userID})
	return nil
}

func (s *Service) ListComments(ctx context.Context, postID, userID string) ([]CommentView, error) {
	if err := s.requirePost(ctx, postID, userID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *Service) CreateComment(ctx context.Context, postID, userID, text string) (CommentView, error) {
	if err := s.requirePost(ctx, postID, userID); err != nil {
		return CommentView{}, err
	}
	text = strings.TrimSpace(text)
	if err := checkComment(text); err != nil {
		return CommentView{}, err
	}

	c := Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return CommentView{}, repo.AsAppErr("post", err)
	}
	return s.commentView(ctx, c)
}

// UpdateComment: solo el autor del comentario.
func (s *Service) UpdateComment(ctx context.Context, postID, commentID, userID, text string) (CommentView, error) {
	c, err := s.commentOf(ctx, postID, commentID)
	if err != nil {
		return CommentView{}, err
	}
	if err := ownership.Authorize(ctx, s.commentAuthor, commentID, userID); err != nil {
		return CommentView{}, err
	}
	c.Text = strings.TrimSpace(text)
	if err := checkComment(c.Text); err != nil {
		return CommentView{}, err
	}
	if err := s.repo.UpdateComment(ctx, c); err != nil {
		return CommentView{}, repo.AsAppErr("comment", err)
	}
	return s.commentView(ctx, c)
}

// DeleteComment: el autor del comentario o el dueño del post.
func (s *Service) DeleteComment(ctx context.Context, postID, commentID, userID string) error {
	if _, err := s.commentOf(ctx, postID, commentID); err != nil {
		return err
	}
	if err := ownership.AnyOf(ctx, commentID, userID, s.commentAuthor, s.commentPost); err != nil {
		return err
	}
	return repo.AsAppErr("comment", s.repo.DeleteComment(ctx, commentID))
}

// ToggleLike invierte el like del usuario: dos llamadas seguidas vuelven al estado original.
func (s *Service) ToggleLike(ctx context.Context, postID, userID string) (LikeState, error) {
	if err := s.requirePost(ctx, postID, userID); err != nil {
		return LikeState{}, err
	}
	st, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return LikeState{}, repo.AsAppErr("post", err)
	}
	metrics.RecordLikeToggle(st.Liked)
	return st, nil
}

func (s *Service) view(ctx context.Context, id, viewerID string) (PostView, error) {
	v, err := s.repo.GetPostView(ctx, id, viewerID)
	if err != nil {
		return PostView{}, repo.AsAppErr("post", err)
	}
	return v, nil
}

func (s *Service) requirePost(ctx context.Context, postID, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.Unauthorized()
	}
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return repo.AsAppErr("post", err)
	}
	return nil
}

// commentOf carga el comentario y verifica que sea del post de la URL.
func (s *Service) commentOf(ctx context.Context, postID, commentID string) (Comment, error) {
	c, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return Comment{}, repo.AsAppErr("comment", err)
	}
	if c.PostID != postID {
		return Comment{}, apperr.NotFound("comment")
	}
	return c, nil
}

func (s *Service) commentView(ctx context.Context, c Comment) (CommentView, error) {
	items, err := s.repo.ListComments(ctx, c.PostID)
	if err != nil {
		return CommentView{}, apperr.Internal(err)
	}
	for _, it := range items {
		if it.ID == c.ID {
			return it, nil
		}
	}
	return CommentView{Comment: c}, nil
}

func checkPost(text string, hasPhoto bool) error {
	if len(text) > maxPostLen {
		return apperr.Field("post_text", "too long")
	}
	if text == "" && !hasPhoto {
		return apperr.Field("post_text", "a post needs text or a photo")
	}
	return nil
}

func checkComment(text string) error {
	switch {
	case text == "":
		return apperr.Field("comment_text", "required")
	case len(text) > maxCommentLen:
		return apperr.Field("comment_text", "too long")
	}
	return nil
}
