package accounts

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

func (r *SQLiteRepository) Upsert(ctx context.Context, a *models.Account) (int64, error) {
	var (
		id  int64
		err error
	)
	createdAt := a.CreatedAt.UnixMilli()

	if a.ID == 0 {
		query := `INSERT INTO accounts (full_name, phone, patient_id, pin_salt, pin_hash, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id`
		err = r.db.QueryRowContext(ctx, query,
			a.FullName, a.Phone, a.PatientID, a.PINSalt, a.PINHash, createdAt).Scan(&id)
	} else {
		query := `INSERT INTO accounts (id, full_name, phone, patient_id, pin_salt, pin_hash, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET full_name = excluded.full_name,
				phone = excluded.phone,
				patient_id = excluded.patient_id,
				pin_salt = excluded.pin_salt,
				pin_hash = excluded.pin_hash,
				created_at = excluded.created_at
			RETURNING id`
		err = r.db.QueryRowContext(ctx, query,
			a.ID, a.FullName, a.Phone, a.PatientID, a.PINSalt, a.PINHash, createdAt).Scan(&id)
	}
	if err != nil {
		return 0, dbx.Classify("upsert account", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByPhone(ctx context.Context, phone string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts WHERE phone = ?`
	return getOne(r.db.QueryRowContext(ctx, query, phone), "get account by phone")
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbx.Classify("list accounts", err)
	}
	return getMany(rows, "list accounts")
}
