package forum

import (
	"net/http"
	"time"

	"pet-care-service/internal/domain/media"
	"pet-care-service/internal/middleware"
	"pet-care-service/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, maxBody int64) {
	r.Route("/forum", func(fr chi.Router) {
		fr.Get("/", listPostsHandler(svc))
		fr.Post("/", createPostHandler(svc, maxBody))

		fr.Route("/{postID}", func(pr chi.Router) {
			pr.Get("/", getPostHandler(svc))
			pr.Put("/", updatePostHandler(svc, maxBody))
			pr.Patch("/", updatePostHandler(svc, maxBody))
			pr.Delete("/", deletePostHandler(svc))

			pr.Get("/comments", listCommentsHandler(svc))
			pr.Post("/comments", createCommentHandler(svc))
			pr.Put("/comments/{commentID}", updateCommentHandler(svc))
			pr.Delete("/comments/{commentID}", deleteCommentHandler(svc))

			pr.Post("/like", toggleLikeHandler(svc))
		})
	})
}

// postRequest documenta el body; con multipart la foto va en "photo".
type postRequest struct {
	PostText string `json:"post_text"`
}

type commentRequest struct {
	CommentText string `json:"comment_text"`
}

type commentResponse struct {
	ID          string    `json:"id"`
	UserFull    string    `json:"user_full"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

type postResponse struct {
	ID         string            `json:"id"`
	UserFull   string            `json:"user_full"`
	UserPhoto  *string           `json:"user_photo"`
	PostText   string            `json:"post_text"`
	PhotoURL   *string           `json:"photo_url"`
	CreatedAt  time.Time         `json:"created_at"`
	LikesCount int               `json:"likes_count"`
	HasLiked   bool              `json:"has_liked"`
	Comments   []commentResponse `json:"comments"`
}

type likeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// listPostsHandler godoc
// @Summary Listar posts del foro
// @Description Público. Con token, `has_liked` indica si el usuario likeó cada post; anónimo siempre false.
// @Tags forum
// @Produce json
// @Param Authorization header string false "Bearer token (opcional)"
// @Success 200 {array} postResponse
// @Router /forum [get]
func listPostsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPosts(r.Context(), middleware.OptionalUser(r))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		out := make([]postResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toPostResponse(v))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createPostHandler godoc
// @Summary Crear post
// @Description JSON o multipart/form-data (foto en `photo`). La URL de la foto queda bajo `forum_posts/post_{id}`.
// @Tags forum
// @Accept json,mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body postRequest true "Post"
// @Success 201 {object} postResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 502 {object} web.ErrorResponse "storage error"
// @Router /forum [post]
func createPostHandler(svc *Service, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		p, err := web.ReadPayload(r, maxBody)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		v, err := svc.CreatePost(r.Context(), userID, CreatePostInput{
			Text:  p.String("post_text"),
			Photo: media.PhotoFrom(p.File("photo")),
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toPostResponse(v))
	}
}

// getPostHandler godoc
// @Summary Ver post
// @Tags forum
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param postID path string true "ID del post"
// @Success 200 {object} postResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 404 {object} web.ErrorResponse "post not found"
// @Router /forum/{postID} [get]
func getPostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		v, err := svc.GetPost(r.Context(), chi.URLParam(r, "postID"), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPostResponse(v))
	}
}

// updatePostHandler godoc
// @Summary Actualizar post
// @Description Solo el autor. Actualización parcial; foto nueva por multipart en `photo`.
// @Tags forum
// @Accept json,mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param postID path string true "ID del post"
// @Param payload body postRequest false "Campos a modificar"
// @Success 200 {object} postResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "post not found"
// @Failure 502 {object} web.ErrorResponse "storage error"
// @Router /forum/{postID} [put]
func updatePostHandler(svc *Service, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		p, err := web.ReadPayload(r, maxBody)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		v, err := svc.UpdatePost(r.Context(), chi.URLParam(r, "postID"), userID, UpdatePostInput{
			Text:  p.Opt("post_text"),
			Photo: media.PhotoFrom(p.File("photo")),
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPostResponse(v))
	}
}

// deletePostHandler godoc
// @Summary Borrar post
// @Description Solo el autor. Borra también comentarios y likes.
// @Tags forum
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param postID path string true "ID del post"
// @Success 204
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "post not found"
// @Router /forum/{postID} [delete]
func deletePostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		if err := svc.DeletePost(r.Context(), chi.URLParam(r, "postID"), userID); err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.NoContent(w)
	}
}

// listCommentsHandler godoc
// @Summary Listar comentarios
// @Tags forum
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param postID path string true "ID del post"
// @Success 200 {array} commentResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 404 {object} web.ErrorResponse "post not found"
// @Router /forum/{postID}/comments [get]
func listCommentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		items, err := svc.ListComments(r.Context(), chi.URLParam(r, "postID"), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toCommentResponses(items))
	}
}

// createCommentHandler godoc
// @Summary Comentar un post
// @Tags forum
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param postID path string true "ID del post"
// @Param payload body commentRequest true "Comentario"
// @Success 201 {object} commentResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 404 {object} web.ErrorResponse "post not found"
// @Router /forum/{postID}/comments [post]
func createCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		p, err := web.ReadPayload(r, 0)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		c, err := svc.CreateComment(r.Context(), chi.URLParam(r, "postID"), userID, p.String("comment_text"))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toCommentResponse(c))
	}
}

// updateCommentHandler godoc
// @Summary Editar comentario
// @Description Solo el autor del comentario.
// @Tags forum
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param postID path string true "ID del post"
// @Param commentID path string true "ID del comentario"
// @Param payload body commentRequest true "Comentario"
// @Success 200 {object} commentResponse
// @Failure 400 {object} web.ErrorResponse "validation error"
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "comment not found"
// @Router /forum/{postID}/comments/{commentID} [put]
func updateCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		p, err := web.ReadPayload(r, 0)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		c, err := svc.UpdateComment(r.Context(), chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), userID, p.String("comment_text"))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toCommentResponse(c))
	}
}

// deleteCommentHandler godoc
// @Summary Borrar comentario
// @Description El autor del comentario o el autor del post.
// @Tags forum
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param postID path string true "ID del post"
// @Param commentID path string true "ID del comentario"
// @Success 204
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 403 {object} web.ErrorResponse "forbidden"
// @Failure 404 {object} web.ErrorResponse "comment not found"
// @Router /forum/{postID}/comments/{commentID} [delete]
func deleteCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		if err := svc.DeleteComment(r.Context(), chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), userID); err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.NoContent(w)
	}
}

// toggleLikeHandler godoc
// @Summary Like / unlike
// @Description Si el usuario ya likeó el post lo quita, si no lo agrega. Devuelve el estado resultante.
// @Tags forum
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param postID path string true "ID del post"
// @Success 200 {object} likeResponse
// @Failure 401 {object} web.ErrorResponse "unauthorized"
// @Failure 404 {object} web.ErrorResponse "post not found"
// @Router /forum/{postID}/like [post]
func toggleLikeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.RequireUser(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		st, err := svc.ToggleLike(r.Context(), chi.URLParam(r, "postID"), userID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, likeResponse{Liked: st.Liked, LikesCount: st.LikesCount})
	}
}

func toPostResponse(v PostView) postResponse {
	return postResponse{
		ID:         v.ID,
		UserFull:   v.Author.FullName,
		UserPhoto:  v.Author.PhotoURL,
		PostText:   v.Text,
		PhotoURL:   v.PhotoURL,
		CreatedAt:  v.CreatedAt,
		LikesCount: v.LikesCount,
		HasLiked:   v.HasLiked,
		Comments:   toCommentResponses(v.Comments),
	}
}

func toCommentResponses(items []CommentView) []commentResponse {
	out := make([]commentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCommentResponse(c))
	}
	return out
}

func toCommentResponse(c CommentView) commentResponse {
	return commentResponse{
		ID:          c.ID,
		UserFull:    c.AuthorName,
		CommentText: c.Text,
		CreatedAt:   c.CreatedAt,
	}
}
