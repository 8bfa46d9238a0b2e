package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/opio/bpmonitor/internal/config"
	"github.com/opio/bpmonitor/internal/devices"
	"github.com/opio/bpmonitor/internal/logging"
	"github.com/opio/bpmonitor/internal/models"
	"github.com/opio/bpmonitor/internal/notify"
	"github.com/opio/bpmonitor/internal/repositories/repomanager"
	"github.com/opio/bpmonitor/internal/services"
	"github.com/opio/bpmonitor/internal/session"
	"github.com/opio/bpmonitor/internal/store"
)

// AccountController is the part of services.Controller the REPL drives.
type AccountController interface {
	Login(ctx context.Context, phone, pin string) (bool, error)
	Register(ctx context.Context, fullName, phone, patientID, pin string) (bool, error)
	Logout(ctx context.Context)
	RecordReading(ctx context.Context, r models.Reading) error
	CurrentAccount() *models.Account
	LatestReading() *models.Reading
	Readings() []models.Reading
	Subscribe() (<-chan services.State, func())
}

type SOSService interface {
	AddSupporter(ctx context.Context, name string, sex models.Sex, phone1, phone2 string) (int64, error)
	Supporters(ctx context.Context) ([]models.Supporter, error)
	Trigger(ctx context.Context) (notify.Alert, error)
}

type PairingService interface {
	Discover(ctx context.Context) ([]devices.Device, error)
	Pair(ctx context.Context, key string) (devices.Device, error)
	Paired() (devices.Device, bool)
}

type Exporter interface {
	Export(ctx context.Context) (string, error)
}

// App is the interactive client. exporter is nil when no bucket is
// configured; sessionAccount reports the account the session token still
// vouches for.
type App struct {
	config         *config.Config
	logger         logging.Logger
	controller     AccountController
	sos            SOSService
	pairing        PairingService
	exporter       Exporter
	sessionAccount func() *models.Account
	reader         *bufio.Reader
	out            io.Writer
	closers        []func()
}

// NewApp opens the database, applies migrations and wires every service
// enabled by c. Call Close when done.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	a := &App{config: c, logger: logger, reader: bufio.NewReader(os.Stdin), out: os.Stdout}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	a.closers = append(a.closers, func() { _ = db.Close() })

	if err := a.wire(ctx, db, rm); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context, db *sql.DB, rm repomanager.RepositoryManager) error {
	c := a.config

	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	st := store.New(db, rm)
	sess := session.New(session.NewIssuer([]byte(c.SecretKey), c.SessionValidityDuration))
	a.sessionAccount = sess.Current

	ctrl, err := services.NewController(ctx, session.NewRepository(st, sess), a.logger)
	if err != nil {
		return err
	}
	a.controller = ctrl

	dispatcher, err := a.buildDispatcher(ctx)
	if err != nil {
		return err
	}
	a.sos = services.NewSOSService(st, dispatcher, a.logger)
	a.pairing = services.NewPairingService(devices.NewStaticDiscoverer(devices.DefaultDevices...), a.logger)

	if c.S3Bucket != "" {
		client, err := services.NewS3Client(ctx, services.S3Settings{
			Region:       c.S3Region,
			User:         c.S3RootUser,
			Password:     c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return err
		}
		a.exporter = services.NewExportService(st, client, c.S3Bucket, a.logger)
	}
	return nil
}

// buildDispatcher always logs alerts and also fans them out to MQTT and
// Redis when those are configured.
func (a *App) buildDispatcher(ctx context.Context) (notify.Dispatcher, error) {
	c := a.config
	multi := notify.MultiDispatcher{notify.NewLogDispatcher(a.logger)}

	if c.MQTTBroker != "" {
		client, err := notify.NewMQTTClient(c.MQTTBroker)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		multi = append(multi, notify.NewMQTTDispatcher(client, c.MQTTTopic))
	}

	if c.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		multi = append(multi, notify.NewRedisStreamDispatcher(rdb, c.RedisStream))
	}

	return multi, nil
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.watchState(ctx)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.controller.CurrentAccount() != nil
}

// requestContext carries the session's account to services that act on
// behalf of the user. An expired session carries none.
func (a *App) requestContext(ctx context.Context) context.Context {
	return session.WithAccount(ctx, a.sessionAccount())
}

// watchState logs every published state until ctx ends.
func (a *App) watchState(ctx context.Context) {
	states, cancel := a.controller.Subscribe()
	defer cancel()

	for {
		select {
		case s, ok := <-states:
			if !ok {
				return
			}
			if s.Account == nil {
				a.logger.Debug(ctx, "state changed", "signed_in", false)
				continue
			}
			a.logger.Debug(ctx, "state changed", "signed_in", true, "account_id", s.Account.ID, "readings", len(s.Readings))
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	acc := a.controller.CurrentAccount()
	if acc == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", acc.FullName)
}
