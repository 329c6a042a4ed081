package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

const userColumns = `id, username, email, role, status, created_at, last_login`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns all users ordered by id.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user; id, created_at and last_login are assigned by the database.
func (r *UserWriteRepository) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	const query = `
		INSERT INTO users (username, email, role, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + userColumns
	args := []any{in.Username, in.Email, in.Role, in.Status}

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Update overwrites the editable fields of a user. It returns nil if the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error) {
	const query = `
		UPDATE users
		SET username = $2, email = $3, role = $4, status = $5
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{id, in.Username, in.Email, in.Role, in.Status}

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Delete removes a user and reports whether a row was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

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
