package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/sbilibin2017/gw-admin-console/internal/services"
	"github.com/sbilibin2017/gw-admin-console/internal/validation"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

// UserLister lists users.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserCreator creates users.
type UserCreator interface {
	Create(ctx context.Context, in models.UserInput) (*models.User, error)
}

// UserUpdater updates users.
type UserUpdater interface {
	Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error)
}

// UserDeleter deletes users.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} models.ErrorResponse
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeError(w, http.StatusInternalServerError, MsgInternal)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create a user
// @Description Validates username, email, role and status; id and createdAt are server-assigned.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserInput true "User fields"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse "Invalid JSON"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Failure 422 {object} models.ErrorResponse "Validation failed"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator, rec RejectionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodePayload(r)
		if err != nil {
			logger.Log.Warnw("failed to decode user", "err", err)
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		in, errs := validation.CreateUser.Validate(payload)
		if errs != nil {
			recordRejection(rec, "user")
			writeValidationError(w, errs)
			return
		}

		user, err := svc.Create(r.Context(), in)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler replacing the editable fields of a user.
// @Summary Update a user
// @Description Full update; every editable field is required. Status may be set to any value.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UserInput true "User fields"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater, rec RejectionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		payload, err := decodePayload(r)
		if err != nil {
			logger.Log.Warnw("failed to decode user", "id", id, "err", err)
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		in, errs := validation.UpdateUser.Validate(payload)
		if errs != nil {
			recordRejection(rec, "user")
			writeValidationError(w, errs)
			return
		}

		user, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, MsgBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeUserError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, MsgUserAlreadyExists)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, MsgInternal)
	}
}
