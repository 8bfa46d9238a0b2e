package session

import (
	"context"

	"github.com/opio/bpmonitor/internal/models"
)

// Store is the persistence contract the Repository forwards to.
// *store.Store satisfies it.
type Store interface {
	InsertAccount(ctx context.Context, a *models.Account) (int64, error)
	FindAccountByPhone(ctx context.Context, phone string) (*models.Account, error)
	FindAccountByPhoneAndPin(ctx context.Context, phone, pin string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	InsertReading(ctx context.Context, r *models.Reading) (int64, error)
	FindLatestReadingForAccount(ctx context.Context, accountID int64) (*models.Reading, error)
	ListReadingsForAccount(ctx context.Context, accountID int64) ([]models.Reading, error)
	InsertSupporter(ctx context.Context, s *models.Supporter) (int64, error)
	FindSupporterForAccount(ctx context.Context, accountID int64) (*models.Supporter, error)
	ListSupportersForAccount(ctx context.Context, accountID int64) ([]models.Supporter, error)
}

// Repository forwards data access to a Store and owns the Session.
type Repository struct {
	store   Store
	session *Session
}

// NewRepository returns a Repository over store whose sign-in state lives in sess.
func NewRepository(store Store, sess *Session) *Repository {
	return &Repository{store: store, session: sess}
}

func (r *Repository) InsertAccount(ctx context.Context, a *models.Account) (int64, error) {
	return r.store.InsertAccount(ctx, a)
}

func (r *Repository) FindAccountByPhone(ctx context.Context, phone string) (*models.Account, error) {
	return r.store.FindAccountByPhone(ctx, phone)
}

func (r *Repository) FindAccountByPhoneAndPin(ctx context.Context, phone, pin string) (*models.Account, error) {
	return r.store.FindAccountByPhoneAndPin(ctx, phone, pin)
}

func (r *Repository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return r.store.ListAccounts(ctx)
}

func (r *Repository) InsertReading(ctx context.Context, rd *models.Reading) (int64, error) {
	return r.store.InsertReading(ctx, rd)
}

func (r *Repository) ListReadingsForAccount(ctx context.Context, accountID int64) ([]models.Reading, error) {
	return r.store.ListReadingsForAccount(ctx, accountID)
}

func (r *Repository) FindLatestReadingForAccount(ctx context.Context, accountID int64) (*models.Reading, error) {
	return r.store.FindLatestReadingForAccount(ctx, accountID)
}

func (r *Repository) InsertSupporter(ctx context.Context, s *models.Supporter) (int64, error) {
	return r.store.InsertSupporter(ctx, s)
}

func (r *Repository) FindSupporterForAccount(ctx context.Context, accountID int64) (*models.Supporter, error) {
	return r.store.FindSupporterForAccount(ctx, accountID)
}

func (r *Repository) ListSupportersForAccount(ctx context.Context, accountID int64) ([]models.Supporter, error) {
	return r.store.ListSupportersForAccount(ctx, accountID)
}

// CurrentAccount returns the signed-in account, or nil.
func (r *Repository) CurrentAccount() *models.Account {
	return r.session.Current()
}

// SetCurrentAccount signs a in.
func (r *Repository) SetCurrentAccount(a models.Account) error {
	return r.session.Set(a)
}

// ClearCurrentAccount signs out.
func (r *Repository) ClearCurrentAccount() {
	r.session.Clear()
}
