package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// Error variables
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("username or email already exists")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, in models.UserInput) (*models.User, error)
	Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserListCache caches the full user list.
type UserListCache interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	UsersGeneration(ctx context.Context) (int64, error)
	SetUsers(ctx context.Context, generation int64, users []models.User) error
	InvalidateUsers(ctx context.Context) error
}

// UserService is the collaborator service for users.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserListCache
	metrics     Recorder
	afterCommit CommitHook
}

// NewUserService creates a new UserService. cache, metrics and afterCommit may be nil.
func NewUserService(
	reader UserReader,
	writer UserWriter,
	cache UserListCache,
	metrics Recorder,
	afterCommit CommitHook,
) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		metrics:     metrics,
		afterCommit: hookOrNow(afterCommit),
	}
}

// List returns all users, from cache when possible.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	if s.cache != nil {
		users, err := s.cache.GetUsers(ctx)
		if err == nil {
			return users, nil
		}
		logger.Log.Debugw("user list not served from cache", "err", err)
	}

	// an invalidation after this point makes the result too old to cache
	var (
		generation int64
		genErr     error
	)
	if s.cache != nil {
		if generation, genErr = s.cache.UsersGeneration(ctx); genErr != nil {
			logger.Log.Errorw("failed to read user list cache generation", "err", genErr)
		}
	}

	users, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	if s.cache != nil && genErr == nil {
		if err := s.cache.SetUsers(ctx, generation, users); err != nil {
			logger.Log.Errorw("failed to cache user list", "err", err)
		}
	}
	return users, nil
}

// Create stores a new user.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	user, err := s.writer.Create(ctx, in)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			logger.Log.Warnw("user already exists", "username", in.Username, "email", in.Email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to create user", "err", err)
		return nil, err
	}

	s.changed(ctx, "create")
	return user, nil
}

// Update replaces the editable fields of a user. Status may be set to any value.
func (s *UserService) Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error) {
	user, err := s.writer.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			logger.Log.Warnw("user already exists", "id", id, "username", in.Username, "email", in.Email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "id", id)
		return nil, ErrUserNotFound
	}

	s.changed(ctx, "update")
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	if !deleted {
		logger.Log.Warnw("user does not exist", "id", id)
		return ErrUserNotFound
	}

	s.changed(ctx, "delete")
	return nil
}

func (s *UserService) changed(ctx context.Context, operation string) {
	s.afterCommit(ctx, func() {
		if s.metrics != nil {
			s.metrics.RecordMutation(entityUser, operation)
		}
		if s.cache == nil {
			return
		}
		if err := s.cache.InvalidateUsers(detach(ctx)); err != nil {
			logger.Log.Errorw("failed to invalidate user list cache", "err", err)
		}
	})
}
