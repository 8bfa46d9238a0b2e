package readings

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

func (r *SQLiteRepository) Upsert(ctx context.Context, rd *models.Reading) (int64, error) {
	var (
		id  int64
		err error
	)
	ts := rd.Timestamp.UnixMilli()

	if rd.ID == 0 {
		query := `INSERT INTO readings (account_id, systolic, diastolic, heart_rate, timestamp_ms, is_manual, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING id`
		err = r.db.QueryRowContext(ctx, query,
			rd.AccountID, rd.Systolic, rd.Diastolic, rd.HeartRate, ts, rd.Manual, rd.Notes).Scan(&id)
	} else {
		query := `INSERT INTO readings (id, account_id, systolic, diastolic, heart_rate, timestamp_ms, is_manual, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET account_id = excluded.account_id,
				systolic = excluded.systolic,
				diastolic = excluded.diastolic,
				heart_rate = excluded.heart_rate,
				timestamp_ms = excluded.timestamp_ms,
				is_manual = excluded.is_manual,
				notes = excluded.notes
			RETURNING id`
		err = r.db.QueryRowContext(ctx, query,
			rd.ID, rd.AccountID, rd.Systolic, rd.Diastolic, rd.HeartRate, ts, rd.Manual, rd.Notes).Scan(&id)
	}
	if err != nil {
		return 0, dbx.Classify("upsert reading", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetLatestForAccount(ctx context.Context, accountID int64) (*models.Reading, error) {
	query := `SELECT ` + selectColumns + ` FROM readings
		WHERE account_id = ?
		ORDER BY timestamp_ms DESC, id DESC
		LIMIT 1`
	return getOne(r.db.QueryRowContext(ctx, query, accountID), "get latest reading")
}

func (r *SQLiteRepository) GetAllForAccount(ctx context.Context, accountID int64) ([]models.Reading, error) {
	query := `SELECT ` + selectColumns + ` FROM readings
		WHERE account_id = ?
		ORDER BY timestamp_ms DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, dbx.Classify("list readings", err)
	}
	return getMany(rows, "list readings")
}
