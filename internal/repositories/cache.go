package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

// Redis keys of the cached entity lists and their generation counters
const (
	UsersListKey = "console:list:users"
	PostsListKey = "console:list:posts"

	UsersGenerationKey = "console:gen:users"
	PostsGenerationKey = "console:gen:posts"
)

// ErrCacheMiss is returned when a list is not cached.
var ErrCacheMiss = errors.New("list not found in cache")

// ListCacheRepository caches full entity lists in Redis as JSON
type ListCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of a cached list
}

// NewListCacheRepository creates a new cache repository with the given TTL
func NewListCacheRepository(client *redis.Client, expiration time.Duration) *ListCacheRepository {
	return &ListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetUsers returns the cached user list.
func (r *ListCacheRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.get(ctx, UsersListKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UsersGeneration returns the current generation of the user list. Read it
// before loading the list from storage and pass it to SetUsers.
func (r *ListCacheRepository) UsersGeneration(ctx context.Context) (int64, error) {
	return r.generation(ctx, UsersGenerationKey)
}

// SetUsers caches the user list unless the list was invalidated after
// generation was read.
func (r *ListCacheRepository) SetUsers(ctx context.Context, generation int64, users []models.User) error {
	return r.set(ctx, UsersListKey, UsersGenerationKey, generation, users)
}

// InvalidateUsers drops the cached user list and bumps its generation.
func (r *ListCacheRepository) InvalidateUsers(ctx context.Context) error {
	return r.del(ctx, UsersListKey, UsersGenerationKey)
}

// GetPosts returns the cached post list.
func (r *ListCacheRepository) GetPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.get(ctx, PostsListKey, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsGeneration returns the current generation of the post list.
func (r *ListCacheRepository) PostsGeneration(ctx context.Context) (int64, error) {
	return r.generation(ctx, PostsGenerationKey)
}

// SetPosts caches the post list unless the list was invalidated after
// generation was read.
func (r *ListCacheRepository) SetPosts(ctx context.Context, generation int64, posts []models.Post) error {
	return r.set(ctx, PostsListKey, PostsGenerationKey, generation, posts)
}

// InvalidatePosts drops the cached post list and bumps its generation.
func (r *ListCacheRepository) InvalidatePosts(ctx context.Context) error {
	return r.del(ctx, PostsListKey, PostsGenerationKey)
}

func (r *ListCacheRepository) get(ctx context.Context, key string, dst any) error {
	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("cache get",
		"key", key,
		"size", len(val),
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(val, dst)
}

func (r *ListCacheRepository) generation(ctx context.Context, genKey string) (int64, error) {
	gen, err := r.client.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// set writes the list only while genKey still holds generation. A concurrent
// invalidation either changes the counter before the check or aborts the
// transaction through WATCH.
func (r *ListCacheRepository) set(ctx context.Context, key, genKey string, generation int64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	stale := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			stale = true
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		stale, err = true, nil
	}

	logger.Log.Infow("cache set",
		"key", key,
		"generation", generation,
		"size", len(data),
		"stale", stale,
		"error", err,
	)
	return err
}

func (r *ListCacheRepository) del(ctx context.Context, key, genKey string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Del(ctx, key)
		return nil
	})
	logger.Log.Infow("cache delete",
		"key", key,
		"result", "deleted",
		"error", err,
	)
	return err
}
