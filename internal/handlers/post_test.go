package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-admin-console/internal/lifecycle"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/sbilibin2017/gw-admin-console/internal/services"
	"github.com/sbilibin2017/gw-admin-console/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPostBody() map[string]any {
	return map[string]any{
		"title":    "Go 1.25 릴리스 노트",
		"content":  "",
		"author":   "박지성",
		"category": "development",
		"status":   "draft",
	}
}

func TestListPostsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPostLister(ctrl)
	svc.EXPECT().List(gomock.Any()).Return([]models.Post{{ID: 1, Title: "hello world", Views: 12}}, nil)

	w := serve(http.MethodGet, "/posts", "/posts", nil, NewListPostsHandler(svc))
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Post
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, int64(12), got[0].Views)

	svc.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))
	w = serve(http.MethodGet, "/posts", "/posts", nil, NewListPostsHandler(svc))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreatePostHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMocks     func(svc *MockPostCreator, rec *MockRejectionRecorder)
		expectedStatus int
		expectedFields map[string]string
		expectedMsg    string
	}{
		{
			name: "created with empty content",
			body: validPostBody(),
			setupMocks: func(svc *MockPostCreator, rec *MockRejectionRecorder) {
				svc.EXPECT().
					Create(gomock.Any(), models.PostInput{Title: "Go 1.25 릴리스 노트", Author: "박지성", Category: models.CategoryDevelopment, Status: models.PostDraft}).
					Return(&models.Post{ID: 1, Status: models.PostDraft}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "created as archived",
			body: func() map[string]any {
				b := validPostBody()
				b["status"] = "archived"
				return b
			}(),
			setupMocks: func(svc *MockPostCreator, rec *MockRejectionRecorder) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Post{ID: 2, Status: models.PostArchived}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "short title and author",
			body: map[string]any{"title": "Hi", "author": "A", "category": "design", "status": "draft"},
			setupMocks: func(svc *MockPostCreator, rec *MockRejectionRecorder) {
				rec.EXPECT().RecordRejection("post")
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedFields: map[string]string{
				validation.FieldTitle:  validation.MsgTitleMin,
				validation.FieldAuthor: validation.MsgAuthorMin,
			},
		},
		{
			name: "storage conflict",
			body: validPostBody(),
			setupMocks: func(svc *MockPostCreator, rec *MockRejectionRecorder) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("insert post: %w", models.ErrConflict))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    MsgPostConflict,
		},
		{
			name:           "array body",
			body:           "[]",
			setupMocks:     func(svc *MockPostCreator, rec *MockRejectionRecorder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "null body",
			body:           "null",
			setupMocks:     func(svc *MockPostCreator, rec *MockRejectionRecorder) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockPostCreator(ctrl)
			rec := NewMockRejectionRecorder(ctrl)
			tt.setupMocks(svc, rec)

			w := serve(http.MethodPost, "/posts", "/posts", tt.body, NewCreatePostHandler(svc, rec))
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedFields != nil {
				assert.Equal(t, tt.expectedFields, decodeError(t, w).Fields)
			}
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeError(t, w).Message)
			}
		})
	}
}

func TestUpdatePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPostUpdater(ctrl)
	rec := NewMockRejectionRecorder(ctrl)
	h := NewUpdatePostHandler(svc, rec)

	body := validPostBody()
	body["status"] = "published"
	body["views"] = 1000

	svc.EXPECT().
		Update(gomock.Any(), int64(4), models.PostInput{Title: "Go 1.25 릴리스 노트", Author: "박지성", Category: models.CategoryDevelopment, Status: models.PostPublished}).
		Return(&models.Post{ID: 4, Status: models.PostPublished, Views: 3}, nil)
	w := serve(http.MethodPut, "/posts/{id}", "/posts/4", body, h)
	assert.Equal(t, http.StatusOK, w.Code)

	svc.EXPECT().Update(gomock.Any(), int64(8), gomock.Any()).Return(nil, services.ErrPostNotFound)
	w = serve(http.MethodPut, "/posts/{id}", "/posts/8", validPostBody(), h)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, MsgPostNotFound, decodeError(t, w).Message)

	rec.EXPECT().RecordRejection("post")
	bad := validPostBody()
	bad["category"] = "news"
	w = serve(http.MethodPut, "/posts/{id}", "/posts/4", bad, h)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, validation.MsgCategoryRequired, decodeError(t, w).Fields[validation.FieldCategory])
}

func TestDeletePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPostDeleter(ctrl)
	h := NewDeletePostHandler(svc)

	svc.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
	w := serve(http.MethodDelete, "/posts/{id}", "/posts/2", nil, h)
	assert.Equal(t, http.StatusNoContent, w.Code)

	svc.EXPECT().Delete(gomock.Any(), int64(3)).Return(errors.New("boom"))
	w = serve(http.MethodDelete, "/posts/{id}", "/posts/3", nil, h)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPostTransitionHandler(t *testing.T) {
	tests := []struct {
		name           string
		action         lifecycle.Action
		target         string
		setupMocks     func(svc *MockPostTransitioner)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "publish draft",
			action: lifecycle.ActionPublish,
			target: "/posts/1/publish",
			setupMocks: func(svc *MockPostTransitioner) {
				svc.EXPECT().Transition(gomock.Any(), int64(1), lifecycle.ActionPublish).
					Return(&models.Post{ID: 1, Status: models.PostPublished}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "publish published",
			action: lifecycle.ActionPublish,
			target: "/posts/1/publish",
			setupMocks: func(svc *MockPostTransitioner) {
				svc.EXPECT().Transition(gomock.Any(), int64(1), lifecycle.ActionPublish).
					Return(nil, lifecycle.ErrTransitionNotAllowed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    MsgTransitionDenied,
		},
		{
			name:   "restore missing post",
			action: lifecycle.ActionRestore,
			target: "/posts/42/restore",
			setupMocks: func(svc *MockPostTransitioner) {
				svc.EXPECT().Transition(gomock.Any(), int64(42), lifecycle.ActionRestore).
					Return(nil, services.ErrPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    MsgPostNotFound,
		},
		{
			name:           "bad id",
			action:         lifecycle.ActionArchive,
			target:         "/posts/x/archive",
			setupMocks:     func(svc *MockPostTransitioner) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    MsgBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockPostTransitioner(ctrl)
			tt.setupMocks(svc)

			pattern := "/posts/{id}/" + string(tt.action)
			w := serve(http.MethodPost, pattern, tt.target, nil, NewPostTransitionHandler(svc, tt.action))
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeError(t, w).Message)
			}
		})
	}
}
