package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-admin-console/internal/lifecycle"
	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=post.go -destination=post_mock.go -package=services

// publishTimeout bounds a single lifecycle event publish.
const publishTimeout = 10 * time.Second

// ErrPostNotFound is returned when the addressed post does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostReader defines read-only operations for posts.
type PostReader interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Create(ctx context.Context, in models.PostInput) (*models.Post, error)
	Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	UpdateStatus(ctx context.Context, id int64, from, to models.PostStatus) (*models.Post, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PostListCache caches the full post list.
type PostListCache interface {
	GetPosts(ctx context.Context) ([]models.Post, error)
	PostsGeneration(ctx context.Context) (int64, error)
	SetPosts(ctx context.Context, generation int64, posts []models.Post) error
	InvalidatePosts(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// PostService is the collaborator service for posts. It is the authoritative
// enforcement point of the post lifecycle.
type PostService struct {
	reader      PostReader
	writer      PostWriter
	cache       PostListCache
	kafkaWriter KafkaWriter
	metrics     Recorder
	afterCommit CommitHook

	publishing sync.WaitGroup
}

// NewPostService creates a new PostService. cache, kafkaWriter, metrics and
// afterCommit may be nil.
func NewPostService(
	reader PostReader,
	writer PostWriter,
	cache PostListCache,
	kafkaWriter KafkaWriter,
	metrics Recorder,
	afterCommit CommitHook,
) *PostService {
	return &PostService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		metrics:     metrics,
		afterCommit: hookOrNow(afterCommit),
	}
}

// List returns all posts, from cache when possible.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	if s.cache != nil {
		posts, err := s.cache.GetPosts(ctx)
		if err == nil {
			return posts, nil
		}
		logger.Log.Debugw("post list not served from cache", "err", err)
	}

	// an invalidation after this point makes the result too old to cache
	var (
		generation int64
		genErr     error
	)
	if s.cache != nil {
		if generation, genErr = s.cache.PostsGeneration(ctx); genErr != nil {
			logger.Log.Errorw("failed to read post list cache generation", "err", genErr)
		}
	}

	posts, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "err", err)
		return nil, err
	}

	if s.cache != nil && genErr == nil {
		if err := s.cache.SetPosts(ctx, generation, posts); err != nil {
			logger.Log.Errorw("failed to cache post list", "err", err)
		}
	}
	return posts, nil
}

// Create stores a new post with zero views. Any status is accepted.
func (s *PostService) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	post, err := s.writer.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create post", "err", err)
		return nil, err
	}

	s.changed(ctx, func() {
		s.recordMutation("create")
	})
	return post, nil
}

// Update replaces the editable fields of a post. The status is written as
// given, without consulting the lifecycle graph.
func (s *PostService) Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	post, err := s.writer.Update(ctx, id, in)
	if err != nil {
		logger.Log.Errorw("failed to update post", "id", id, "err", err)
		return nil, err
	}
	if post == nil {
		logger.Log.Warnw("post does not exist", "id", id)
		return nil, ErrPostNotFound
	}

	s.changed(ctx, func() {
		s.recordMutation("update")
	})
	return post, nil
}

// Delete removes a post.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete post", "id", id, "err", err)
		return err
	}
	if !deleted {
		logger.Log.Warnw("post does not exist", "id", id)
		return ErrPostNotFound
	}

	s.changed(ctx, func() {
		s.recordMutation("delete")
	})
	return nil
}

// Publish moves a draft post to published.
func (s *PostService) Publish(ctx context.Context, id int64) (*models.Post, error) {
	return s.Transition(ctx, id, lifecycle.ActionPublish)
}

// Archive moves a published post to archived.
func (s *PostService) Archive(ctx context.Context, id int64) (*models.Post, error) {
	return s.Transition(ctx, id, lifecycle.ActionArchive)
}

// Restore moves an archived post back to draft.
func (s *PostService) Restore(ctx context.Context, id int64) (*models.Post, error) {
	return s.Transition(ctx, id, lifecycle.ActionRestore)
}

// Transition applies action to a post. It fails with
// lifecycle.ErrTransitionNotAllowed when the post's current status lacks that
// transition, including when another request changed the status first.
func (s *PostService) Transition(ctx context.Context, id int64, action lifecycle.Action) (*models.Post, error) {
	post, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get post", "id", id, "err", err)
		return nil, err
	}
	if post == nil {
		logger.Log.Warnw("post does not exist", "id", id)
		return nil, ErrPostNotFound
	}

	to, err := lifecycle.Next(post.Status, action)
	if err != nil {
		logger.Log.Warnw("transition rejected", "id", id, "action", action, "status", post.Status, "err", err)
		s.recordTransition(action, "rejected")
		return nil, err
	}

	updated, err := s.writer.UpdateStatus(ctx, id, post.Status, to)
	if err != nil {
		logger.Log.Errorw("failed to update post status", "id", id, "from", post.Status, "to", to, "err", err)
		return nil, err
	}
	if updated == nil {
		logger.Log.Warnw("post status changed concurrently", "id", id, "action", action, "expected", post.Status)
		s.recordTransition(action, "rejected")
		return nil, lifecycle.ErrTransitionNotAllowed
	}

	event := models.PostEvent{
		EventID:   uuid.NewString(),
		PostID:    id,
		Action:    string(action),
		From:      post.Status,
		To:        to,
		Timestamp: time.Now().Unix(),
	}
	s.changed(ctx, func() {
		s.recordTransition(action, "ok")
		s.publishAsync(detach(ctx), event)
	})

	return updated, nil
}

// changed runs after the surrounding transaction commits: it invalidates the
// cached list and then runs fn.
func (s *PostService) changed(ctx context.Context, fn func()) {
	s.afterCommit(ctx, func() {
		if s.cache != nil {
			if err := s.cache.InvalidatePosts(detach(ctx)); err != nil {
				logger.Log.Errorw("failed to invalidate post list cache", "err", err)
			}
		}
		fn()
	})
}

// publishAsync publishes event in the background so a slow broker never holds
// up the transition response.
func (s *PostService) publishAsync(ctx context.Context, event models.PostEvent) {
	s.publishing.Add(1)
	go func() {
		defer s.publishing.Done()
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		s.publishEvent(ctx, event)
	}()
}

// Wait blocks until all lifecycle events handed to the broker have been
// published or have failed.
func (s *PostService) Wait() {
	s.publishing.Wait()
}

// publishEvent publishes a lifecycle event to Kafka.
func (s *PostService) publishEvent(ctx context.Context, event models.PostEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal post event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.PostID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish post event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("post event published to Kafka", "event_id", event.EventID, "post_id", event.PostID, "action", event.Action)
	}
}

func (s *PostService) recordMutation(operation string) {
	if s.metrics != nil {
		s.metrics.RecordMutation(entityPost, operation)
	}
}

func (s *PostService) recordTransition(action lifecycle.Action, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordTransition(string(action), outcome)
	}
}
