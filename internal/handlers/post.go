package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-admin-console/internal/lifecycle"
	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/sbilibin2017/gw-admin-console/internal/services"
	"github.com/sbilibin2017/gw-admin-console/internal/validation"
)

//go:generate mockgen -source=post.go -destination=post_mock.go -package=handlers

// PostLister lists posts.
type PostLister interface {
	List(ctx context.Context) ([]models.Post, error)
}

// PostCreator creates posts.
type PostCreator interface {
	Create(ctx context.Context, in models.PostInput) (*models.Post, error)
}

// PostUpdater updates posts.
type PostUpdater interface {
	Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
}

// PostDeleter deletes posts.
type PostDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// PostTransitioner applies lifecycle actions to posts.
type PostTransitioner interface {
	Transition(ctx context.Context, id int64, action lifecycle.Action) (*models.Post, error)
}

// NewListPostsHandler returns an HTTP handler listing all posts.
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Failure 500 {object} models.ErrorResponse
// @Router /posts [get]
func NewListPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list posts", "err", err)
			writeError(w, http.StatusInternalServerError, MsgInternal)
			return
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

// NewCreatePostHandler returns an HTTP handler creating a post.
// @Summary Create a post
// @Description Validates title, content, author, category and status; id, views and createdAt are server-assigned.
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.PostInput true "Post fields"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /posts [post]
func NewCreatePostHandler(svc PostCreator, rec RejectionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodePayload(r)
		if err != nil {
			logger.Log.Warnw("failed to decode post", "err", err)
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		in, errs := validation.CreatePost.Validate(payload)
		if errs != nil {
			recordRejection(rec, "post")
			writeValidationError(w, errs)
			return
		}

		post, err := svc.Create(r.Context(), in)
		if err != nil {
			writePostError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, post)
	}
}

// NewUpdatePostHandler returns an HTTP handler replacing the editable fields of a post.
// @Summary Update a post
// @Description Full update. Status may be set to any value, bypassing the lifecycle.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body models.PostInput true "Post fields"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /posts/{id} [put]
func NewUpdatePostHandler(svc PostUpdater, rec RejectionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		payload, err := decodePayload(r)
		if err != nil {
			logger.Log.Warnw("failed to decode post", "id", id, "err", err)
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		in, errs := validation.UpdatePost.Validate(payload)
		if errs != nil {
			recordRejection(rec, "post")
			writeValidationError(w, errs)
			return
		}

		post, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writePostError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

// NewDeletePostHandler returns an HTTP handler deleting a post.
// @Summary Delete a post
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func NewDeletePostHandler(svc PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writePostError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewPostTransitionHandler returns an HTTP handler applying action to a post.
// @Summary Publish, archive or restore a post
// @Description draft -> publish -> published -> archive -> archived -> restore -> draft. Any other request is rejected.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param action path string true "Action" Enums(publish, archive, restore)
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Transition not allowed from the current status"
// @Router /posts/{id}/{action} [post]
func NewPostTransitionHandler(svc PostTransitioner, action lifecycle.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		post, err := svc.Transition(r.Context(), id, action)
		if err != nil {
			writePostError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

func writePostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		writeError(w, http.StatusNotFound, MsgPostNotFound)
	case errors.Is(err, lifecycle.ErrTransitionNotAllowed):
		writeError(w, http.StatusConflict, MsgTransitionDenied)
	case errors.Is(err, models.ErrConflict):
		logger.Log.Warnw("post write conflict", "err", err)
		writeError(w, http.StatusConflict, MsgPostConflict)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, MsgInternal)
	}
}
