package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505"}), models.ErrConflict)

	other := &pgconn.PgError{Code: "23514"}
	assert.Equal(t, error(other), mapError(other))

	plain := errors.New("boom")
	assert.Equal(t, plain, mapError(plain))
}

func TestPostWriteRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE posts SET status = $3 WHERE id = $1 AND status = $2")).
		WithArgs(int64(7), "draft", "published").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author", "category", "status", "views", "created_at"}).
			AddRow(7, "Hello World", "", "Jo", "development", "published", 3, time.Now()))
	mock.ExpectCommit()

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	repo := NewPostWriteRepository(sqlxDB, func(context.Context) *sqlx.Tx { return tx })
	post, err := repo.UpdateStatus(context.Background(), 7, models.PostDraft, models.PostPublished)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, models.PostPublished, post.Status)
	assert.Equal(t, int64(3), post.Views)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_ListError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("connection reset"))

	repo := NewUserReadRepository(sqlx.NewDb(db, "sqlmock"))
	users, err := repo.List(context.Background())
	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}
