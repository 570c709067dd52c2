package forum

import "context"

type Repository interface {
	CreatePost(ctx context.Context, p Post) error
	UpdatePost(ctx context.Context, p Post) error
	// DeletePost borra en cascada comentarios y likes.
	DeletePost(ctx context.Context, id string) error
	GetPost(ctx context.Context, id string) (Post, error)

	// GetPostView y ListPostViews calculan likes_count y has_liked al momento.
	// viewerID vacío => HasLiked siempre false.
	GetPostView(ctx context.Context, id, viewerID string) (PostView, error)
	ListPostViews(ctx context.Context, viewerID string) ([]PostView, error)

	CreateComment(ctx context.Context, c Comment) error
	UpdateComment(ctx context.Context, c Comment) error
	DeleteComment(ctx context.Context, id string) error
	GetComment(ctx context.Context, id string) (Comment, error)
	ListComments(ctx context.Context, postID string) ([]CommentView, error)

	// ToggleLike borra el like si existe o lo crea si no, en una sola operación
	// protegida por la unicidad (post_id, user_id).
	ToggleLike(ctx context.Context, postID, userID string) (LikeState, error)
}
