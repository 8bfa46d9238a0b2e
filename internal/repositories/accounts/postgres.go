package accounts

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

func (r *PostgresRepository) Upsert(ctx context.Context, a *models.Account) (int64, error) {
	var (
		id  int64
		err error
	)
	createdAt := a.CreatedAt.UnixMilli()

	if a.ID == 0 {
		query :=
			`INSERT INTO accounts (full_name, phone, patient_id, pin_salt, pin_hash, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`
		err = r.db.QueryRowContext(ctx, query,
			a.FullName, a.Phone, a.PatientID, a.PINSalt, a.PINHash, createdAt).Scan(&id)
	} else {
		query :=
			`INSERT INTO accounts (id, full_name, phone, patient_id, pin_salt, pin_hash, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name,
				phone = EXCLUDED.phone,
				patient_id = EXCLUDED.patient_id,
				pin_salt = EXCLUDED.pin_salt,
				pin_hash = EXCLUDED.pin_hash,
				created_at = EXCLUDED.created_at
			 RETURNING id`
		err = r.db.QueryRowContext(ctx, query,
			a.ID, a.FullName, a.Phone, a.PatientID, a.PINSalt, a.PINHash, createdAt).Scan(&id)
	}
	if err != nil {
		return 0, dbx.Classify("upsert account", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetByPhone(ctx context.Context, phone string) (*models.Account, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM accounts
		 WHERE phone = $1`
	return getOne(r.db.QueryRowContext(ctx, query, phone), "get account by phone")
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbx.Classify("list accounts", err)
	}
	return getMany(rows, "list accounts")
}
