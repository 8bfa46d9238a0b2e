package supporters

import (
	"context"

	"github.com/opio/bpmonitor/internal/models"
)

// Repository describes storage operations for Supporter objects.
type Repository interface {
	// Insert stores s and returns its new ID.
	Insert(ctx context.Context, s *models.Supporter) (int64, error)

	// GetFirstForAccount returns the supporter of accountID with the lowest ID.
	GetFirstForAccount(ctx context.Context, accountID int64) (*models.Supporter, error)

	// GetAllForAccount returns every supporter of accountID ordered by ID.
	GetAllForAccount(ctx context.Context, accountID int64) ([]models.Supporter, error)
}
