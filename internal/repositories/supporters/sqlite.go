package supporters

import (
	"context"

	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, s *models.Supporter) (int64, error) {
	query := `INSERT INTO supporters (account_id, name, sex, phone1, phone2)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		s.AccountID, s.Name, string(s.Sex), s.Phone1, s.Phone2).Scan(&id)
	if err != nil {
		return 0, dbx.Classify("insert supporter", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetFirstForAccount(ctx context.Context, accountID int64) (*models.Supporter, error) {
	query := `SELECT ` + selectColumns + ` FROM supporters
		WHERE account_id = ?
		ORDER BY id
		LIMIT 1`
	return getOne(r.db.QueryRowContext(ctx, query, accountID), "get supporter")
}

func (r *SQLiteRepository) GetAllForAccount(ctx context.Context, accountID int64) ([]models.Supporter, error) {
	query := `SELECT ` + selectColumns + ` FROM supporters
		WHERE account_id = ?
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, dbx.Classify("list supporters", err)
	}
	return getMany(rows, "list supporters")
}
