package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

const postColumns = `id, title, content, author, category, status, views, created_at`

// PostReadRepository handles post read operations
type PostReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostReadRepository(db *sqlx.DB, txGetter TxGetter) *PostReadRepository {
	return &PostReadRepository{db: db, txGetter: txGetter}
}

// List returns all posts ordered by id.
func (r *PostReadRepository) List(ctx context.Context) ([]models.Post, error) {
	const query = `SELECT ` + postColumns + ` FROM posts ORDER BY id`

	posts := []models.Post{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &posts, query)
	logQuery(query, nil, len(posts), err)

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID returns the post with the given id, or nil if there is none.
func (r *PostReadRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	const query = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var post models.Post
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &post, query, id)
	logQuery(query, []any{id}, post, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// PostWriteRepository handles post write operations
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostWriteRepository(db *sqlx.DB, txGetter TxGetter) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a post with zero views; id and created_at are assigned by the database.
func (r *PostWriteRepository) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	const query = `
		INSERT INTO posts (title, content, author, category, status, views, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, NOW())
		RETURNING ` + postColumns
	args := []any{in.Title, in.Content, in.Author, in.Category, in.Status}

	var post models.Post
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &post, query, args...)
	logQuery(query, args, post, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

// Update overwrites the editable fields of a post, status included.
// It returns nil if the post does not exist.
func (r *PostWriteRepository) Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	const query = `
		UPDATE posts
		SET title = $2, content = $3, author = $4, category = $5, status = $6
		WHERE id = $1
		RETURNING ` + postColumns
	args := []any{id, in.Title, in.Content, in.Author, in.Category, in.Status}

	var post models.Post
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &post, query, args...)
	logQuery(query, args, post, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

// UpdateStatus moves a post from one status to another. The row is only
// changed while it is still in status from; otherwise nil is returned.
func (r *PostWriteRepository) UpdateStatus(ctx context.Context, id int64, from, to models.PostStatus) (*models.Post, error) {
	const query = `
		UPDATE posts
		SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING ` + postColumns
	args := []any{id, from, to}

	var post models.Post
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &post, query, args...)
	logQuery(query, args, post, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post and reports whether a row was deleted.
func (r *PostWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM posts WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
