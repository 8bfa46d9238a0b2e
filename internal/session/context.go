package session

import (
	"context"

	"github.com/opio/bpmonitor/internal/models"
)

type ctxKey string

const accountKey ctxKey = "account"

// WithAccount returns a copy of ctx carrying a.
func WithAccount(ctx context.Context, a *models.Account) context.Context {
	return context.WithValue(ctx, accountKey, a)
}

// AccountFromContext returns the account stored by WithAccount.
func AccountFromContext(ctx context.Context) (*models.Account, bool) {
	a, ok := ctx.Value(accountKey).(*models.Account)
	return a, ok && a != nil
}
