package supporters

import (
	"database/sql"
	"errors"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/models"
)

const selectColumns = `id, account_id, name, sex, phone1, phone2`

type scanner interface {
	Scan(dest ...any) error
}

func scanSupporter(s scanner) (*models.Supporter, error) {
	var (
		sp  models.Supporter
		sex string
	)
	if err := s.Scan(&sp.ID, &sp.AccountID, &sp.Name, &sex, &sp.Phone1, &sp.Phone2); err != nil {
		return nil, err
	}
	sp.Sex = models.Sex(sex)
	return &sp, nil
}

func getOne(row *sql.Row, op string) (*models.Supporter, error) {
	sp, err := scanSupporter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Classify(op, err)
	}
	return sp, nil
}

func getMany(rows *sql.Rows, op string) ([]models.Supporter, error) {
	defer rows.Close()

	var result []models.Supporter
	for rows.Next() {
		sp, err := scanSupporter(rows)
		if err != nil {
			return nil, dbx.Classify(op, err)
		}
		result = append(result, *sp)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(op, err)
	}
	return result, nil
}
