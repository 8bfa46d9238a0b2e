package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls    []string
	pairArgs []string
	err      error
}

func (f *fakeExec) call(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	return f.call("register")
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.call("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.call("logout")
}
func (f *fakeExec) Dashboard(context.Context) error    { return f.call("dashboard") }
func (f *fakeExec) History(context.Context) error      { return f.call("history") }
func (f *fakeExec) Record(context.Context) error       { return f.call("record") }
func (f *fakeExec) AddSupporter(context.Context) error { return f.call("addsupporter") }
func (f *fakeExec) Supporters(context.Context) error   { return f.call("supporters") }
func (f *fakeExec) SOS(context.Context) error          { return f.call("sos") }
func (f *fakeExec) Devices(context.Context) error      { return f.call("devices") }
func (f *fakeExec) Pair(_ context.Context, args []string) error {
	f.pairArgs = args
	return f.call("pair")
}
func (f *fakeExec) Export(context.Context) error { return f.call("export") }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	lines := capturePrints(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"d",
		"history",
		"record",
		"addsupporter",
		"supporters",
		"sos",
		"devices",
		"pair galaxy watch",
		"export",
		"logout",
		"foobar",
		"exit",
		"dashboard",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(s)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "dashboard", "history", "record", "addsupporter", "supporters",
		"sos", "devices", "pair", "export", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"galaxy", "watch"}, exec.pairArgs)
	assert.Contains(t, *lines, "Available commands: register, login, devices, pair, exit")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
	assert.Contains(t, *lines, "bp(s)> ")
}

func TestRunREPL_EOFWithoutNewline(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("devices")))

	assert.Equal(t, []string{"devices"}, exec.calls)
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	lines := capturePrints(t)

	exec := &fakeExec{err: fmt.Errorf("sos: %w", common.ErrorUnauthorized)}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("sos\nquit\n")))

	assert.Contains(t, *lines, "Please log in first.")
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("x: %w", common.ErrorUnauthorized), "Please log in first."},
		{fmt.Errorf("%w: PIN must be 4 digits", common.ErrorValidation), "Invalid input: PIN must be 4 digits"},
		{fmt.Errorf("pair: %w", common.ErrorNotFound), "Not found: pair: not found"},
		{fmt.Errorf("insert: %w", common.ErrStorage), "Storage is unavailable, please try again."},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err))
	}
}
