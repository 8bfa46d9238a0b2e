package services

import (
	"context"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/models"
	"github.com/opio/bpmonitor/internal/session"
)

// requestAccount returns the signed-in account carried by ctx.
func requestAccount(ctx context.Context) (*models.Account, error) {
	acc, ok := session.AccountFromContext(ctx)
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	return acc, nil
}
