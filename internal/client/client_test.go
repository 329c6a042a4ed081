package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/v1/", nil, 5*time.Second)
}

func TestUsers_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.User{{ID: 1, Username: "kim"}, {ID: 2, Username: "lee"}})
	})

	users, err := c.Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "lee", users[1].Username)
}

func TestUsers_Create(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.UserInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "kim", in.Username)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{ID: 9, Username: in.Username})
	})

	user, err := c.Users().Create(context.Background(), models.UserInput{Username: "kim", Email: "kim@example.com", Role: models.RoleUser, Status: models.UserActive})
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
}

func TestUsers_UpdateConflict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/users/4", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "이미 사용 중인 사용자명 또는 이메일입니다"})
	})

	_, err := c.Users().Update(context.Background(), 4, models.UserInput{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "이미 사용 중인 사용자명 또는 이메일입니다", apiErr.Message)
}

func TestUsers_Delete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/users/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Users().Delete(context.Background(), 3))
}

func TestPosts_ValidationError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Message: "입력값이 올바르지 않습니다",
			Fields:  map[string]string{"title": "제목은 최소 5자 이상이어야 합니다"},
		})
	})

	_, err := c.Posts().Create(context.Background(), models.PostInput{Title: "Hi"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "제목은 최소 5자 이상이어야 합니다", apiErr.Fields["title"])
}

func TestPosts_ErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	err := c.Posts().Delete(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
}

func TestPosts_Transitions(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Post{ID: 5})
	})

	ctx := context.Background()
	_, err := c.Posts().Publish(ctx, 5)
	require.NoError(t, err)
	_, err = c.Posts().Archive(ctx, 5)
	require.NoError(t, err)
	_, err = c.Posts().Restore(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/v1/posts/5/publish", "/api/v1/posts/5/archive", "/api/v1/posts/5/restore"}, paths)
}

func TestPosts_ListTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, nil, time.Second)
	_, err := c.Posts().List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "api error: status 500", (&APIError{Status: 500}).Error())
	assert.Equal(t, "api error: status 404: 게시글을 찾을 수 없습니다", (&APIError{Status: 404, Message: "게시글을 찾을 수 없습니다"}).Error())
}
