package readings

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

func (r *PostgresRepository) Upsert(ctx context.Context, rd *models.Reading) (int64, error) {
	var (
		id  int64
		err error
	)
	ts := rd.Timestamp.UnixMilli()

	if rd.ID == 0 {
		query :=
			`INSERT INTO readings (account_id, systolic, diastolic, heart_rate, timestamp_ms, is_manual, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`
		err = r.db.QueryRowContext(ctx, query,
			rd.AccountID, rd.Systolic, rd.Diastolic, rd.HeartRate, ts, rd.Manual, rd.Notes).Scan(&id)
	} else {
		query :=
			`INSERT INTO readings (id, account_id, systolic, diastolic, heart_rate, timestamp_ms, is_manual, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (id) DO UPDATE SET account_id = EXCLUDED.account_id,
				systolic = EXCLUDED.systolic,
				diastolic = EXCLUDED.diastolic,
				heart_rate = EXCLUDED.heart_rate,
				timestamp_ms = EXCLUDED.timestamp_ms,
				is_manual = EXCLUDED.is_manual,
				notes = EXCLUDED.notes
			 RETURNING id`
		err = r.db.QueryRowContext(ctx, query,
			rd.ID, rd.AccountID, rd.Systolic, rd.Diastolic, rd.HeartRate, ts, rd.Manual, rd.Notes).Scan(&id)
	}
	if err != nil {
		return 0, dbx.Classify("upsert reading", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetLatestForAccount(ctx context.Context, accountID int64) (*models.Reading, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM readings
		 WHERE account_id = $1
		 ORDER BY timestamp_ms DESC, id DESC
		 LIMIT 1`
	return getOne(r.db.QueryRowContext(ctx, query, accountID), "get latest reading")
}

func (r *PostgresRepository) GetAllForAccount(ctx context.Context, accountID int64) ([]models.Reading, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM readings
		 WHERE account_id = $1
		 ORDER BY timestamp_ms DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, dbx.Classify("list readings", err)
	}
	return getMany(rows, "list readings")
}
