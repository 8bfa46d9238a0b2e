package readings

import (
	"context"

	"github.com/opio/bpmonitor/internal/models"
)

// Repository describes storage operations for Reading objects.
type Repository interface {
	// Upsert inserts r when r.ID is zero, otherwise replaces the row with
	// that ID. It returns the stored ID.
	Upsert(ctx context.Context, r *models.Reading) (int64, error)

	// GetLatestForAccount returns the newest reading of accountID.
	GetLatestForAccount(ctx context.Context, accountID int64) (*models.Reading, error)

	// GetAllForAccount returns every reading of accountID, newest first.
	GetAllForAccount(ctx context.Context, accountID int64) ([]models.Reading, error)
}
