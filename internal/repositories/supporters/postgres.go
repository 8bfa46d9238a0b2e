package supporters

import (
	"context"

	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, s *models.Supporter) (int64, error) {
	query :=
		`INSERT INTO supporters (account_id, name, sex, phone1, phone2)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		s.AccountID, s.Name, string(s.Sex), s.Phone1, s.Phone2).Scan(&id)
	if err != nil {
		return 0, dbx.Classify("insert supporter", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetFirstForAccount(ctx context.Context, accountID int64) (*models.Supporter, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM supporters
		 WHERE account_id = $1
		 ORDER BY id
		 LIMIT 1`
	return getOne(r.db.QueryRowContext(ctx, query, accountID), "get supporter")
}

func (r *PostgresRepository) GetAllForAccount(ctx context.Context, accountID int64) ([]models.Supporter, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM supporters
		 WHERE account_id = $1
		 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, dbx.Classify("list supporters", err)
	}
	return getMany(rows, "list supporters")
}
