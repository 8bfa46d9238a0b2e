package readings

import (
	"database/sql"
	"errors"
	"time"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/models"
)

const selectColumns = `id, account_id, systolic, diastolic, heart_rate, timestamp_ms, is_manual, notes`

type scanner interface {
	Scan(dest ...any) error
}

func scanReading(s scanner) (*models.Reading, error) {
	var (
		r  models.Reading
		ts int64
	)
	if err := s.Scan(&r.ID, &r.AccountID, &r.Systolic, &r.Diastolic, &r.HeartRate, &ts, &r.Manual, &r.Notes); err != nil {
		return nil, err
	}
	r.Timestamp = time.UnixMilli(ts)
	return &r, nil
}

func getOne(row *sql.Row, op string) (*models.Reading, error) {
	r, err := scanReading(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Classify(op, err)
	}
	return r, nil
}

func getMany(rows *sql.Rows, op string) ([]models.Reading, error) {
	defer rows.Close()

	var result []models.Reading
	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, dbx.Classify(op, err)
		}
		result = append(result, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(op, err)
	}
	return result, nil
}
