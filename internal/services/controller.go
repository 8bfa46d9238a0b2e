package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/cryptox"
	"github.com/opio/bpmonitor/internal/logging"
	"github.com/opio/bpmonitor/internal/models"
)

// Repository is the data and session access the Controller needs.
// *session.Repository satisfies it.
type Repository interface {
	InsertAccount(ctx context.Context, a *models.Account) (int64, error)
	FindAccountByPhone(ctx context.Context, phone string) (*models.Account, error)
	FindAccountByPhoneAndPin(ctx context.Context, phone, pin string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	InsertReading(ctx context.Context, r *models.Reading) (int64, error)
	ListReadingsForAccount(ctx context.Context, accountID int64) ([]models.Reading, error)

	CurrentAccount() *models.Account
	SetCurrentAccount(a models.Account) error
	ClearCurrentAccount()
}

// State is a snapshot of what the presentation layer shows. Readings are
// newest first and empty when nobody is signed in.
type State struct {
	Account  *models.Account
	Latest   *models.Reading
	Readings []models.Reading
}

func (s State) clone() State {
	out := State{Readings: slices.Clone(s.Readings)}
	if s.Account != nil {
		a := *s.Account
		out.Account = &a
	}
	if s.Latest != nil {
		r := *s.Latest
		out.Latest = &r
	}
	if out.Readings == nil {
		out.Readings = []models.Reading{}
	}
	return out
}

// Controller runs the authentication and reading-capture use cases and
// keeps the derived State current after each of them.
type Controller struct {
	repo   Repository
	logger logging.Logger

	mu     sync.Mutex
	state  State
	subs   map[int]chan State
	nextID int
}

// NewController returns a Controller over repo. When repo already has a
// signed-in account its readings are loaded right away.
func NewController(ctx context.Context, repo Repository, logger logging.Logger) (*Controller, error) {
	c := &Controller{
		repo:   repo,
		logger: logger,
		subs:   make(map[int]chan State),
	}
	if acc := repo.CurrentAccount(); acc != nil {
		if err := c.loadAccountData(ctx, *acc); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Login signs in the account matching phone and pin. It returns false when
// there is no such account or the PIN is wrong, without saying which.
func (c *Controller) Login(ctx context.Context, phone, pin string) (bool, error) {
	acc, err := c.repo.FindAccountByPhoneAndPin(ctx, phone, pin)
	if err != nil {
		return false, fmt.Errorf("login: %w", err)
	}
	if acc == nil {
		c.logger.Info(ctx, "login rejected")
		return false, nil
	}

	if err := c.signIn(ctx, *acc); err != nil {
		return false, fmt.Errorf("login: %w", err)
	}
	c.logger.Info(ctx, "login succeeded", "account_id", acc.ID)
	return true, nil
}

// Register creates an account and signs it in. It returns false when the
// phone is taken or the patient ID is taken ignoring case.
func (c *Controller) Register(ctx context.Context, fullName, phone, patientID, pin string) (bool, error) {
	existing, err := c.repo.FindAccountByPhone(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		c.logger.Info(ctx, "registration rejected", "reason", "phone in use")
		return false, nil
	}

	all, err := c.repo.ListAccounts(ctx)
	if err != nil {
		return false, fmt.Errorf("register: %w", err)
	}
	for _, a := range all {
		if strings.EqualFold(a.PatientID, patientID) {
			c.logger.Info(ctx, "registration rejected", "reason", "patient id in use")
			return false, nil
		}
	}

	salt, hash := cryptox.HashPIN(pin)
	acc := models.Account{
		FullName:  fullName,
		Phone:     phone,
		PatientID: patientID,
		PINSalt:   salt,
		PINHash:   hash,
	}
	id, err := c.repo.InsertAccount(ctx, &acc)
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.logger.Info(ctx, "registration rejected", "reason", "duplicate on insert")
			return false, nil
		}
		return false, fmt.Errorf("register: %w", err)
	}
	if id <= 0 {
		return false, nil
	}
	acc.ID = id

	if err := c.signIn(ctx, acc); err != nil {
		return false, fmt.Errorf("register: %w", err)
	}
	c.logger.Info(ctx, "account registered", "account_id", id)
	return true, nil
}

// Logout signs out and resets the state.
func (c *Controller) Logout(ctx context.Context) {
	var id int64
	if acc := c.repo.CurrentAccount(); acc != nil {
		id = acc.ID
	}
	c.repo.ClearCurrentAccount()
	c.setState(State{})
	c.logger.Info(ctx, "logged out", "account_id", id)
}

// RecordReading stores r and refreshes the state of the signed-in account.
// A zero AccountID is taken from the session and a zero Timestamp becomes
// the current time.
func (c *Controller) RecordReading(ctx context.Context, r models.Reading) error {
	current := c.sync()
	if r.AccountID == 0 {
		if current == nil {
			return fmt.Errorf("record reading: %w", common.ErrorUnauthorized)
		}
		r.AccountID = current.ID
	}

	id, err := c.repo.InsertReading(ctx, &r)
	if err != nil {
		return fmt.Errorf("record reading: %w", err)
	}
	c.logger.Info(ctx, "reading recorded",
		"account_id", r.AccountID, "reading_id", id, "systolic", r.Systolic, "diastolic", r.Diastolic)

	if current == nil {
		return nil
	}
	return c.loadAccountData(ctx, *current)
}

// State returns a copy of the current state. A session that has ended on
// its own, such as by token expiry, resets the state first.
func (c *Controller) State() State {
	c.sync()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller) CurrentAccount() *models.Account {
	return c.State().Account
}

func (c *Controller) LatestReading() *models.Reading {
	return c.State().Latest
}

func (c *Controller) Readings() []models.Reading {
	return c.State().Readings
}

// sync resets the state when it shows an account but the session has
// ended, and returns the session's account.
func (c *Controller) sync() *models.Account {
	current := c.repo.CurrentAccount()

	c.mu.Lock()
	shown := c.state.Account
	c.mu.Unlock()

	if shown != nil && current == nil {
		c.setState(State{})
	}
	return current
}

// Subscribe returns a channel that always holds the most recent State,
// starting with the current one. Slow readers only miss intermediate
// states. cancel closes the channel.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.sync()
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan State, 1)
	ch <- c.state.clone()
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (c *Controller) signIn(ctx context.Context, acc models.Account) error {
	if err := c.repo.SetCurrentAccount(acc); err != nil {
		return err
	}
	if err := c.loadAccountData(ctx, acc); err != nil {
		c.repo.ClearCurrentAccount()
		c.setState(State{})
		return err
	}
	return nil
}

func (c *Controller) loadAccountData(ctx context.Context, acc models.Account) error {
	readings, err := c.repo.ListReadingsForAccount(ctx, acc.ID)
	if err != nil {
		return fmt.Errorf("load readings: %w", err)
	}

	// readings are newest first
	var latest *models.Reading
	if len(readings) > 0 {
		r := readings[0]
		latest = &r
	}
	c.setState(State{Account: &acc, Latest: latest, Readings: readings})
	return nil
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = s.clone()
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- c.state.clone()
	}
}
