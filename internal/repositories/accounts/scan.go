package accounts

import (
	"database/sql"
	"errors"
	"time"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/models"
)

const selectColumns = `id, full_name, phone, patient_id, pin_salt, pin_hash, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		a         models.Account
		createdAt int64
	)
	if err := s.Scan(&a.ID, &a.FullName, &a.Phone, &a.PatientID, &a.PINSalt, &a.PINHash, &createdAt); err != nil {
		return nil, err
	}
	a.CreatedAt = time.UnixMilli(createdAt)
	return &a, nil
}

func getOne(row *sql.Row, op string) (*models.Account, error) {
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Classify(op, err)
	}
	return a, nil
}

func getMany(rows *sql.Rows, op string) ([]models.Account, error) {
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, dbx.Classify(op, err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(op, err)
	}
	return result, nil
}
