package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-care-service/internal/domain/forum"
)

type forumRepo struct {
	s *Store
}

func (r *forumRepo) CreatePost(ctx context.Context, p forum.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("post id required")
	}
	if _, ok := r.s.users[p.UserID]; !ok {
		return ErrNotFound
	}
	r.s.posts[p.ID] = p
	return nil
}

func (r *forumRepo) UpdatePost(ctx context.Context, p forum.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.posts[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.UserID = cur.UserID
	p.CreatedAt = cur.CreatedAt
	r.s.posts[p.ID] = p
	return nil
}

func (r *forumRepo) DeletePost(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.posts, id)
	delete(r.s.likes, id)
	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
		}
	}
	return nil
}

func (r *forumRepo) GetPost(ctx context.Context, id string) (forum.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return forum.Post{}, ErrNotFound
	}
	return p, nil
}

func (r *forumRepo) GetPostView(ctx context.Context, id, viewerID string) (forum.PostView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return forum.PostView{}, ErrNotFound
	}
	return r.viewLocked(p, viewerID), nil
}

func (r *forumRepo) ListPostViews(ctx context.Context, viewerID string) ([]forum.PostView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := make([]forum.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	out := make([]forum.PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, r.viewLocked(p, viewerID))
	}
	return out, nil
}

func (r *forumRepo) viewLocked(p forum.Post, viewerID string) forum.PostView {
	v := forum.PostView{
		Post:       p,
		LikesCount: len(r.s.likes[p.ID]),
		Comments:   r.commentsLocked(p.ID),
	}
	if u, ok := r.s.users[p.UserID]; ok {
		v.Author = forum.Author{FullName: u.FullName, PhotoURL: u.PhotoURL}
	}
	if viewerID != "" {
		_, v.HasLiked = r.s.likes[p.ID][viewerID]
	}
	return v
}

func (r *forumRepo) commentsLocked(postID string) []forum.CommentView {
	out := make([]forum.CommentView, 0)
	for _, c := range r.s.comments {
		if c.PostID != postID {
			continue
		}
		cv := forum.CommentView{Comment: c}
		if u, ok := r.s.users[c.UserID]; ok {
			cv.AuthorName = u.FullName
		}
		out = append(out, cv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *forumRepo) CreateComment(ctx context.Context, c forum.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("comment id required")
	}
	if _, ok := r.s.posts[c.PostID]; !ok {
		return ErrNotFound
	}
	r.s.comments[c.ID] = c
	return nil
}

func (r *forumRepo) UpdateComment(ctx context.Context, c forum.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.comments[c.ID]
	if !ok {
		return ErrNotFound
	}
	cur.Text = c.Text
	r.s.comments[c.ID] = cur
	return nil
}

func (r *forumRepo) DeleteComment(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.comments, id)
	return nil
}

func (r *forumRepo) GetComment(ctx context.Context, id string) (forum.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return forum.Comment{}, ErrNotFound
	}
	return c, nil
}

func (r *forumRepo) ListComments(ctx context.Context, postID string) ([]forum.CommentView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.posts[postID]; !ok {
		return nil, ErrNotFound
	}
	return r.commentsLocked(postID), nil
}

func (r *forumRepo) ToggleLike(ctx context.Context, postID, userID string) (forum.LikeState, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[postID]; !ok {
		return forum.LikeState{}, ErrNotFound
	}
	set := r.s.likes[postID]
	if set == nil {
		set = make(map[string]struct{})
		r.s.likes[postID] = set
	}

	_, had := set[userID]
	if had {
		delete(set, userID)
	} else {
		set[userID] = struct{}{}
	}
	return forum.LikeState{Liked: !had, LikesCount: len(set)}, nil
}
