package forum

import "time"

// Post es una publicación del foro. Texto y foto son opcionales, pero no ambos.
type Post struct {
	ID       string
	UserID   string
	Text     string
	PhotoURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Text      string
	CreatedAt time.Time
}

// Author son los datos públicos del autor que se muestran junto al post.
type Author struct {
	FullName string
	PhotoURL *string
}

// PostView es el post con los campos derivados calculados al leer.
type PostView struct {
	Post
	Author     Author
	LikesCount int
	HasLiked   bool
	Comments   []CommentView
}

type CommentView struct {
	Comment
	AuthorName string
}

// LikeState es el resultado de un toggle.
type LikeState struct {
	Liked      bool
	LikesCount int
}
