package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestListCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewListCacheRepository(rdb, 2*time.Second)

	t.Run("Users", func(t *testing.T) {
		_, err := repo.GetUsers(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)

		users := []models.User{
			{ID: 1, Username: "alice", Email: "alice@example.com", Role: models.RoleAdmin, Status: models.UserActive, CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		}
		gen, err := repo.UsersGeneration(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.SetUsers(ctx, gen, users))

		got, err := repo.GetUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, users, got)

		require.NoError(t, repo.InvalidateUsers(ctx))
		_, err = repo.GetUsers(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Posts", func(t *testing.T) {
		posts := []models.Post{
			{ID: 9, Title: "Hello World", Author: "Jo", Category: models.CategoryDesign, Status: models.PostPublished, Views: 12, CreatedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)},
		}
		gen, err := repo.PostsGeneration(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.SetPosts(ctx, gen, posts))

		got, err := repo.GetPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, posts, got)

		require.NoError(t, repo.InvalidatePosts(ctx))
		_, err = repo.GetPosts(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Invalidation bumps generation", func(t *testing.T) {
		before, err := repo.PostsGeneration(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.InvalidatePosts(ctx))
		after, err := repo.PostsGeneration(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after)
	})

	t.Run("Stale list is not written after invalidation", func(t *testing.T) {
		// a slow list read started before a mutation committed
		gen, err := repo.PostsGeneration(ctx)
		require.NoError(t, err)
		stale := []models.Post{{ID: 1, Title: "Before edit", Status: models.PostDraft}}

		require.NoError(t, repo.InvalidatePosts(ctx))
		require.NoError(t, repo.SetPosts(ctx, gen, stale))

		_, err = repo.GetPosts(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)

		// the next read caches normally
		gen, err = repo.PostsGeneration(ctx)
		require.NoError(t, err)
		fresh := []models.Post{{ID: 1, Title: "After edit", Status: models.PostDraft}}
		require.NoError(t, repo.SetPosts(ctx, gen, fresh))
		got, err := repo.GetPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})

	t.Run("Stale user list is not written after invalidation", func(t *testing.T) {
		gen, err := repo.UsersGeneration(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.InvalidateUsers(ctx))
		require.NoError(t, repo.SetUsers(ctx, gen, []models.User{{ID: 1, Username: "old"}}))

		_, err = repo.GetUsers(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Expiration", func(t *testing.T) {
		gen, err := repo.PostsGeneration(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.SetPosts(ctx, gen, []models.Post{{ID: 1}}))
		time.Sleep(3 * time.Second)

		_, err = repo.GetPosts(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
