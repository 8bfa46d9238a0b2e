// Package store is the persistence contract of the application: accounts,
// readings and supporters, on top of the repositories of whichever SQL
// backend is configured.
//
// Lookups that match nothing return a nil record and a nil error. Write
// failures are classified: unique-index violations wrap
// common.ErrorAlreadyExists, references to a missing account wrap
// common.ErrorUnknownAccount and everything else wraps common.ErrStorage.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/cryptox"
	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/models"
	"github.com/opio/bpmonitor/internal/repositories/repomanager"
)

// Store persists and queries accounts, readings and supporters.
type Store struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

// New returns a Store over db using the repositories vended by m.
func New(db *sql.DB, m repomanager.RepositoryManager) *Store {
	return &Store{db: db, repomanager: m, now: time.Now}
}

// InsertAccount stores a and returns its ID. A zero ID is assigned by the
// database; a non-zero ID that already exists is replaced. CreatedAt is set
// to the current time when zero.
func (s *Store) InsertAccount(ctx context.Context, a *models.Account) (int64, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	return s.repomanager.Accounts(s.db).Upsert(ctx, a)
}

// FindAccountByPhone returns the account registered under phone, or nil.
func (s *Store) FindAccountByPhone(ctx context.Context, phone string) (*models.Account, error) {
	return noneIfNotFound(s.repomanager.Accounts(s.db).GetByPhone(ctx, phone))
}

// FindAccountByPhoneAndPin returns the account registered under phone whose
// PIN matches pin. Unknown phones and wrong PINs both yield nil.
func (s *Store) FindAccountByPhoneAndPin(ctx context.Context, phone, pin string) (*models.Account, error) {
	a, err := s.FindAccountByPhone(ctx, phone)
	if err != nil || a == nil {
		return nil, err
	}
	if !cryptox.VerifyPIN(pin, a.PINSalt, a.PINHash) {
		return nil, nil
	}
	return a, nil
}

// ListAccounts returns every account, in no particular order.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.repomanager.Accounts(s.db).GetAll(ctx)
}

// InsertReading stores r and returns its ID. Timestamp is set to the
// current time when zero.
func (s *Store) InsertReading(ctx context.Context, r *models.Reading) (int64, error) {
	if r.Timestamp.IsZero() {
		r.Timestamp = s.now()
	}
	return s.repomanager.Readings(s.db).Upsert(ctx, r)
}

// FindLatestReadingForAccount returns the newest reading of accountID, or nil.
func (s *Store) FindLatestReadingForAccount(ctx context.Context, accountID int64) (*models.Reading, error) {
	return noneIfNotFound(s.repomanager.Readings(s.db).GetLatestForAccount(ctx, accountID))
}

// ListReadingsForAccount returns the readings of accountID, newest first.
func (s *Store) ListReadingsForAccount(ctx context.Context, accountID int64) ([]models.Reading, error) {
	return s.repomanager.Readings(s.db).GetAllForAccount(ctx, accountID)
}

// InsertSupporter stores sp under a fresh ID and returns it.
func (s *Store) InsertSupporter(ctx context.Context, sp *models.Supporter) (int64, error) {
	sp.ID = 0
	return s.repomanager.Supporters(s.db).Insert(ctx, sp)
}

// FindSupporterForAccount returns the first supporter of accountID, or nil.
func (s *Store) FindSupporterForAccount(ctx context.Context, accountID int64) (*models.Supporter, error) {
	return noneIfNotFound(s.repomanager.Supporters(s.db).GetFirstForAccount(ctx, accountID))
}

// ListSupportersForAccount returns the supporters of accountID in ID order.
func (s *Store) ListSupportersForAccount(ctx context.Context, accountID int64) ([]models.Supporter, error) {
	return s.repomanager.Supporters(s.db).GetAllForAccount(ctx, accountID)
}

// EmergencySnapshot reads the supporters and the latest reading of
// accountID in one transaction, so an alert never pairs a reading with a
// supporter list from a different moment. latest is nil when there are no
// readings.
func (s *Store) EmergencySnapshot(ctx context.Context, accountID int64) (supporters []models.Supporter, latest *models.Reading, err error) {
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if supporters, err = s.repomanager.Supporters(tx).GetAllForAccount(ctx, accountID); err != nil {
			return err
		}
		latest, err = noneIfNotFound(s.repomanager.Readings(tx).GetLatestForAccount(ctx, accountID))
		return err
	})
	if err != nil && !errors.Is(err, common.ErrStorage) {
		err = dbx.Classify("emergency snapshot", err)
	}
	if err != nil {
		return nil, nil, err
	}
	return supporters, latest, nil
}

func noneIfNotFound[T any](v *T, err error) (*T, error) {
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
