package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The response is held back until the outcome is known: a handler status
// below 400 commits, anything else rolls back. Callbacks registered with
// AfterCommit run once the commit succeeds.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeInternalError(w)
				return
			}

			state := &txState{tx: tx}
			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			buf := &bufferedWriter{header: w.Header(), statusCode: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(context.WithValue(r.Context(), txKey, state)))

			if buf.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				buf.flushTo(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeInternalError(w)
				return
			}

			for _, fn := range state.afterCommit {
				fn()
			}
			buf.flushTo(w)
		})
	}
}

type txState struct {
	tx          *sqlx.Tx
	afterCommit []func()
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit runs fn after the transaction in ctx commits, or immediately
// when ctx carries no transaction. fn never runs for a rolled back transaction.
func AfterCommit(ctx context.Context, fn func()) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn()
		return
	}
	state.afterCommit = append(state.afterCommit, fn)
}

type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.statusCode = code
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedWriter) flushTo(w http.ResponseWriter) {
	w.WriteHeader(b.statusCode)
	if _, err := w.Write(b.body.Bytes()); err != nil {
		logger.Log.Errorw("failed to write response", "error", err)
	}
}

func writeInternalError(w http.ResponseWriter) {
	h := w.Header()
	for k := range h {
		h.Del(k)
	}
	h.Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(models.ErrorResponse{Message: "서버 오류가 발생했습니다"})
}
