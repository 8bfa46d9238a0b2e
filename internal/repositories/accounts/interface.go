package accounts

import (
	"context"

	"github.com/opio/bpmonitor/internal/models"
)

// Repository describes storage operations for Account objects.
type Repository interface {
	// Upsert inserts a when a.ID is zero, otherwise replaces the row with
	// that ID. It returns the stored ID.
	Upsert(ctx context.Context, a *models.Account) (int64, error)

	// GetByPhone returns the account registered under phone.
	GetByPhone(ctx context.Context, phone string) (*models.Account, error)

	// GetAll returns every account ordered by ID.
	GetAll(ctx context.Context) ([]models.Account, error)
}
