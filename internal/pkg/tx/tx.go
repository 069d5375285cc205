package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBRepo
}

// TxMiddlewareHTTP puts the repository into the request context so that
// handlers can open a transaction with TxExecute.
func TxMiddlewareHTTP(repo DBRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a single database transaction.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("transaction is not available in context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}
