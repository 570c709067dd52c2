package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-care-service/internal/domain/forum"
)

type ForumRepo struct {
	s *Store
}

func (r *ForumRepo) CreatePost(ctx context.Context, p forum.Post) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO forum_posts (id, user_id, post_text, photo_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.UserID,
		p.Text,
		nullString(p.PhotoURL),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapErr(err)
}

func (r *ForumRepo) UpdatePost(ctx context.Context, p forum.Post) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `
		UPDATE forum_posts
		SET post_text = $2, photo_url = $3, updated_at = $4
		WHERE id = $1
	`, p.ID, p.Text, nullString(p.PhotoURL), p.UpdatedAt))
}

// DeletePost: comentarios y likes caen por ON DELETE CASCADE.
func (r *ForumRepo) DeletePost(ctx context.Context, id string) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `DELETE FROM forum_posts WHERE id::text = $1`, id))
}

func (r *ForumRepo) GetPost(ctx context.Context, id string) (forum.Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return forum.Post{}, ErrNotFound
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	var p forum.Post
	var photo sql.NullString
	err := r.s.db.QueryRowContext(ctx, `
		SELECT id, user_id, post_text, photo_url, created_at, updated_at
		FROM forum_posts
		WHERE id::text = $1
	`, id).Scan(&p.ID, &p.UserID, &p.Text, &photo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return forum.Post{}, mapErr(err)
	}
	p.PhotoURL = ptrString(photo)
	return p, nil
}

// postViewQuery calcula likes_count y has_liked en la misma lectura.
// $1 es el viewer; vacío nunca matchea.
const postViewQuery = `
	SELECT
		p.id, p.user_id, p.post_text, p.photo_url, p.created_at, p.updated_at,
		u.full_name, u.photo_url,
		(SELECT count(*) FROM forum_likes l WHERE l.post_id = p.id),
		EXISTS (SELECT 1 FROM forum_likes l WHERE l.post_id = p.id AND l.user_id::text = $1)
	FROM forum_posts p
	JOIN users u ON u.id = p.user_id
`

func (r *ForumRepo) GetPostView(ctx context.Context, id, viewerID string) (forum.PostView, error) {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	v, err := scanPostView(r.s.db.QueryRowContext(ctx, postViewQuery+` WHERE p.id::text = $2`, viewerID, id))
	if err != nil {
		return forum.PostView{}, mapErr(err)
	}

	comments, err := r.listComments(ctx, id)
	if err != nil {
		return forum.PostView{}, err
	}
	v.Comments = comments
	return v, nil
}

func (r *ForumRepo) ListPostViews(ctx context.Context, viewerID string) ([]forum.PostView, error) {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	rows, err := r.s.db.QueryContext(ctx, postViewQuery+` ORDER BY p.created_at DESC, p.id DESC`, viewerID)
	if err != nil {
		return nil, err
	}
	out := make([]forum.PostView, 0)
	for rows.Next() {
		v, err := scanPostView(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		v.Comments = []forum.CommentView{}
		out = append(out, v)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Todos los comentarios en una sola query, agrupados por post.
	byPost, err := r.commentsByPost(ctx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if cs, ok := byPost[out[i].ID]; ok {
			out[i].Comments = cs
		}
	}
	return out, nil
}

func scanPostView(sc scanner) (forum.PostView, error) {
	var v forum.PostView
	var photo, authorPhoto sql.NullString
	if err := sc.Scan(
		&v.ID,
		&v.UserID,
		&v.Text,
		&photo,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.Author.FullName,
		&authorPhoto,
		&v.LikesCount,
		&v.HasLiked,
	); err != nil {
		return forum.PostView{}, err
	}
	v.PhotoURL = ptrString(photo)
	v.Author.PhotoURL = ptrString(authorPhoto)
	return v, nil
}

const commentViewQuery = `
	SELECT c.id, c.post_id, c.user_id, c.comment_text, c.created_at, u.full_name
	FROM forum_comments c
	JOIN users u ON u.id = c.user_id
`

func (r *ForumRepo) listComments(ctx context.Context, postID string) ([]forum.CommentView, error) {
	rows, err := r.s.db.QueryContext(ctx, commentViewQuery+`
		WHERE c.post_id::text = $1
		ORDER BY c.created_at ASC, c.id ASC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]forum.CommentView, 0)
	for rows.Next() {
		cv, err := scanCommentView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, rows.Err()
}

func (r *ForumRepo) commentsByPost(ctx context.Context) (map[string][]forum.CommentView, error) {
	rows, err := r.s.db.QueryContext(ctx, commentViewQuery+` ORDER BY c.created_at ASC, c.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]forum.CommentView)
	for rows.Next() {
		cv, err := scanCommentView(rows)
		if err != nil {
			return nil, err
		}
		out[cv.PostID] = append(out[cv.PostID], cv)
	}
	return out, rows.Err()
}

func scanCommentView(sc scanner) (forum.CommentView, error) {
	var cv forum.CommentView
	err := sc.Scan(&cv.ID, &cv.PostID, &cv.UserID, &cv.Text, &cv.CreatedAt, &cv.AuthorName)
	return cv, err
}

func (r *ForumRepo) CreateComment(ctx context.Context, c forum.Comment) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO forum_comments (id, post_id, user_id, comment_text, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, c.ID, c.PostID, c.UserID, c.Text, c.CreatedAt)
	return mapErr(err)
}

func (r *ForumRepo) UpdateComment(ctx context.Context, c forum.Comment) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx,
		`UPDATE forum_comments SET comment_text = $2 WHERE id = $1`, c.ID, c.Text))
}

func (r *ForumRepo) DeleteComment(ctx context.Context, id string) error {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	return affectedOne(r.s.db.ExecContext(ctx, `DELETE FROM forum_comments WHERE id::text = $1`, id))
}

func (r *ForumRepo) GetComment(ctx context.Context, id string) (forum.Comment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return forum.Comment{}, ErrNotFound
	}
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	var c forum.Comment
	err := r.s.db.QueryRowContext(ctx, `
		SELECT id, post_id, user_id, comment_text, created_at
		FROM forum_comments
		WHERE id::text = $1
	`, id).Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.CreatedAt)
	if err != nil {
		return forum.Comment{}, mapErr(err)
	}
	return c, nil
}

func (r *ForumRepo) ListComments(ctx context.Context, postID string) ([]forum.CommentView, error) {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM forum_posts WHERE id::text = $1)`, postID,
	).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return r.listComments(ctx, postID)
}

// ToggleLike hace el borrado o el alta en un solo statement. El snapshot del
// SELECT final no ve los cambios de los CTE, por eso se ajusta el conteo.
// Si el post no existe, el INSERT falla por FK y se devuelve ErrNotFound.
// Si no hubo borrado ni alta, otro toggle concurrente insertó la fila primero:
// el estado se relee en un statement nuevo.
func (r *ForumRepo) ToggleLike(ctx context.Context, postID, userID string) (forum.LikeState, error) {
	ctx, cancel := r.s.withTimeout(ctx)
	defer cancel()

	var (
		st      forum.LikeState
		removed bool
	)
	err := r.s.db.QueryRowContext(ctx, `
		WITH removed AS (
			DELETE FROM forum_likes
			WHERE post_id = $1 AND user_id = $2
			RETURNING 1
		), added AS (
			INSERT INTO forum_likes (post_id, user_id, created_at)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM removed)
			ON CONFLICT (post_id, user_id) DO NOTHING
			RETURNING 1
		)
		SELECT
			EXISTS (SELECT 1 FROM added),
			EXISTS (SELECT 1 FROM removed),
			(SELECT count(*) FROM forum_likes WHERE post_id = $1)
				- (SELECT count(*) FROM removed)
				+ (SELECT count(*) FROM added)
	`, postID, userID, time.Now().UTC()).Scan(&st.Liked, &removed, &st.LikesCount)
	if err != nil {
		return forum.LikeState{}, mapErr(err)
	}
	if st.Liked || removed {
		return st, nil
	}

	err = r.s.db.QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM forum_likes WHERE post_id = $1 AND user_id = $2),
			(SELECT count(*) FROM forum_likes WHERE post_id = $1)
	`, postID, userID).Scan(&st.Liked, &st.LikesCount)
	if err != nil {
		return forum.LikeState{}, mapErr(err)
	}
	return st, nil
}
