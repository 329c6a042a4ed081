package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/sbilibin2017/gw-admin-console/internal/services"
	"github.com/sbilibin2017/gw-admin-console/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(method, pattern, target string, body any, h http.HandlerFunc) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUserLister(ctrl)
	h := NewListUsersHandler(svc)

	t.Run("ok", func(t *testing.T) {
		users := []models.User{{ID: 1, Username: "kim", Email: "kim@example.com", Role: models.RoleAdmin, Status: models.UserActive, CreatedAt: time.Now().UTC()}}
		svc.EXPECT().List(gomock.Any()).Return(users, nil)

		w := serve(http.MethodGet, "/users", "/users", nil, h)
		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.User
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "kim", got[0].Username)
	})

	t.Run("service error", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		w := serve(http.MethodGet, "/users", "/users", nil, h)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, MsgInternal, decodeError(t, w).Message)
	})
}

func TestCreateUserHandler(t *testing.T) {
	valid := map[string]any{"username": "kim_01", "email": "kim@example.com", "role": "user", "status": "active"}

	tests := []struct {
		name           string
		body           any
		setupMocks     func(svc *MockUserCreator, rec *MockRejectionRecorder)
		expectedStatus int
		expectedFields map[string]string
	}{
		{
			name: "created",
			body: valid,
			setupMocks: func(svc *MockUserCreator, rec *MockRejectionRecorder) {
				svc.EXPECT().
					Create(gomock.Any(), models.UserInput{Username: "kim_01", Email: "kim@example.com", Role: models.RoleUser, Status: models.UserActive}).
					Return(&models.User{ID: 7, Username: "kim_01"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           "not-json",
			setupMocks:     func(svc *MockUserCreator, rec *MockRejectionRecorder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation failure issues no create",
			body: map[string]any{"username": "a", "email": "", "role": "root", "status": "active"},
			setupMocks: func(svc *MockUserCreator, rec *MockRejectionRecorder) {
				rec.EXPECT().RecordRejection("user")
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedFields: map[string]string{
				validation.FieldUsername: validation.MsgUsernameMin,
				validation.FieldEmail:    validation.MsgEmailRequired,
				validation.FieldRole:     validation.MsgRoleRequired,
			},
		},
		{
			name: "duplicate",
			body: valid,
			setupMocks: func(svc *MockUserCreator, rec *MockRejectionRecorder) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "internal error",
			body: valid,
			setupMocks: func(svc *MockUserCreator, rec *MockRejectionRecorder) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserCreator(ctrl)
			rec := NewMockRejectionRecorder(ctrl)
			tt.setupMocks(svc, rec)

			w := serve(http.MethodPost, "/users", "/users", tt.body, NewCreateUserHandler(svc, rec))
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedFields != nil {
				resp := decodeError(t, w)
				assert.Equal(t, MsgValidationFailed, resp.Message)
				assert.Equal(t, tt.expectedFields, resp.Fields)
			}
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	valid := map[string]any{"username": "lee", "email": "lee@example.com", "role": "moderator", "status": "suspended"}

	tests := []struct {
		name           string
		target         string
		body           any
		setupMocks     func(svc *MockUserUpdater, rec *MockRejectionRecorder)
		expectedStatus int
	}{
		{
			name:   "updated",
			target: "/users/3",
			body:   valid,
			setupMocks: func(svc *MockUserUpdater, rec *MockRejectionRecorder) {
				svc.EXPECT().
					Update(gomock.Any(), int64(3), models.UserInput{Username: "lee", Email: "lee@example.com", Role: models.RoleModerator, Status: models.UserSuspended}).
					Return(&models.User{ID: 3}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad id",
			target:         "/users/abc",
			body:           valid,
			setupMocks:     func(svc *MockUserUpdater, rec *MockRejectionRecorder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing field",
			target: "/users/3",
			body:   map[string]any{"username": "lee", "email": "lee@example.com", "role": "user"},
			setupMocks: func(svc *MockUserUpdater, rec *MockRejectionRecorder) {
				rec.EXPECT().RecordRejection("user")
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "not found",
			target: "/users/99",
			body:   valid,
			setupMocks: func(svc *MockUserUpdater, rec *MockRejectionRecorder) {
				svc.EXPECT().Update(gomock.Any(), int64(99), gomock.Any()).Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserUpdater(ctrl)
			rec := NewMockRejectionRecorder(ctrl)
			tt.setupMocks(svc, rec)

			w := serve(http.MethodPut, "/users/{id}", tt.target, tt.body, NewUpdateUserHandler(svc, rec))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUserDeleter(ctrl)
	h := NewDeleteUserHandler(svc)

	svc.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
	w := serve(http.MethodDelete, "/users/{id}", "/users/5", nil, h)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	svc.EXPECT().Delete(gomock.Any(), int64(6)).Return(services.ErrUserNotFound)
	w = serve(http.MethodDelete, "/users/{id}", "/users/6", nil, h)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, MsgUserNotFound, decodeError(t, w).Message)

	w = serve(http.MethodDelete, "/users/{id}", "/users/0", nil, h)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserHandler_NilRecorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := serve(http.MethodPost, "/users", "/users", map[string]any{"username": 12}, NewCreateUserHandler(NewMockUserCreator(ctrl), nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, validation.MsgNotString, decodeError(t, w).Fields[validation.FieldUsername])
}
