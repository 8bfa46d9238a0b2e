package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/opio/bpmonitor/internal/config"
	"github.com/opio/bpmonitor/internal/devices"
	"github.com/opio/bpmonitor/internal/logging"
	"github.com/opio/bpmonitor/internal/models"
	"github.com/opio/bpmonitor/internal/notify"
	"github.com/opio/bpmonitor/internal/services"
	"github.com/opio/bpmonitor/internal/session"
)

type fakeController struct {
	account  *models.Account
	readings []models.Reading

	loginOK  bool
	loginErr error
	regOK    bool
	regErr   error
	recErr   error

	loginPhone, loginPIN                  string
	regName, regPhone, regPatient, regPIN string
	recorded                              []models.Reading
	logoutCalled                          bool
	states                                chan services.State
}

func (f *fakeController) Login(_ context.Context, phone, pin string) (bool, error) {
	f.loginPhone, f.loginPIN = phone, pin
	if f.loginOK {
		f.account = &models.Account{ID: 1, FullName: "Jane Doe", Phone: phone, PatientID: "P-001"}
	}
	return f.loginOK, f.loginErr
}

func (f *fakeController) Register(_ context.Context, fullName, phone, patientID, pin string) (bool, error) {
	f.regName, f.regPhone, f.regPatient, f.regPIN = fullName, phone, patientID, pin
	if f.regOK {
		f.account = &models.Account{ID: 1, FullName: fullName, Phone: phone, PatientID: patientID}
	}
	return f.regOK, f.regErr
}

func (f *fakeController) Logout(context.Context) {
	f.logoutCalled = true
	f.account = nil
}

func (f *fakeController) RecordReading(_ context.Context, r models.Reading) error {
	if f.recErr != nil {
		return f.recErr
	}
	f.recorded = append(f.recorded, r)
	f.readings = append([]models.Reading{r}, f.readings...)
	return nil
}

func (f *fakeController) CurrentAccount() *models.Account { return f.account }

func (f *fakeController) LatestReading() *models.Reading {
	if len(f.readings) == 0 {
		return nil
	}
	r := f.readings[0]
	return &r
}

func (f *fakeController) Readings() []models.Reading { return f.readings }

func (f *fakeController) Subscribe() (<-chan services.State, func()) {
	if f.states == nil {
		f.states = make(chan services.State, 4)
	}
	return f.states, func() {}
}

type fakeSOS struct {
	supporters []models.Supporter
	triggerErr error
	added      []models.Supporter
	ctxAccount *models.Account
}

func (f *fakeSOS) AddSupporter(ctx context.Context, name string, sex models.Sex, phone1, phone2 string) (int64, error) {
	f.ctxAccount = accountIn(ctx)
	s := models.Supporter{ID: int64(len(f.added) + 1), Name: name, Sex: sex, Phone1: phone1, Phone2: phone2}
	f.added = append(f.added, s)
	return s.ID, nil
}

func (f *fakeSOS) Supporters(ctx context.Context) ([]models.Supporter, error) {
	f.ctxAccount = accountIn(ctx)
	return f.supporters, nil
}

func (f *fakeSOS) Trigger(ctx context.Context) (notify.Alert, error) {
	f.ctxAccount = accountIn(ctx)
	if f.triggerErr != nil {
		return notify.Alert{}, f.triggerErr
	}
	contacts := make([]notify.Contact, len(f.supporters))
	return notify.Alert{Supporters: contacts}, nil
}

type fakeExporter struct {
	key        string
	err        error
	ctxAccount *models.Account
}

func (f *fakeExporter) Export(ctx context.Context) (string, error) {
	f.ctxAccount = accountIn(ctx)
	return f.key, f.err
}

// stubPINs makes getPIN return pins in order.
func stubPINs(t *testing.T, pins ...string) {
	t.Helper()
	orig := getPIN
	t.Cleanup(func() { getPIN = orig })
	getPIN = func(string, io.Writer) ([]byte, error) {
		if len(pins) == 0 {
			return nil, io.EOF
		}
		p := pins[0]
		pins = pins[1:]
		return []byte(p), nil
	}
}

func discardLogger() logging.Logger {
	return logging.NewJSONSlogLogger(io.Discard, "error")
}

// newTestApp builds an App over fakes reading input lines.
func newTestApp(ctrl *fakeController, input ...string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:         cfg,
		logger:         discardLogger(),
		controller:     ctrl,
		sessionAccount: ctrl.CurrentAccount,
		sos:            &fakeSOS{},
		pairing:        services.NewPairingService(devices.NewStaticDiscoverer(devices.DefaultDevices...), discardLogger()),
		reader:         bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n")),
		out:            out,
	}, out
}

func signedIn() *fakeController {
	return &fakeController{account: &models.Account{ID: 7, FullName: "Jane Doe", Phone: "+15550001", PatientID: "P-001"}}
}

func accountIn(ctx context.Context) *models.Account {
	acc, _ := session.AccountFromContext(ctx)
	return acc
}
