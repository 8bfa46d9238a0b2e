package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/opio/bpmonitor/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	History(ctx context.Context) error
	Record(ctx context.Context) error
	AddSupporter(ctx context.Context) error
	Supporters(ctx context.Context) error
	SOS(ctx context.Context) error
	Devices(ctx context.Context) error
	Pair(ctx context.Context, args []string) error
	Export(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the bpmonitor CLI.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  help, register, login, devices, pair <id>, exit | quit
//
//	Logged in:
//	  help, dashboard, history, record, addsupporter, supporters, sos,
//	  devices, pair <id>, export, logout, exit | quit
//
// Errors returned by handlers are printed and the loop carries on.
//
// Handlers prompt for their own fields on the same reader, so the loop must
// not read ahead of the current line.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bp%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, history, record, addsupporter, supporters, sos, devices, pair, export, logout, exit")
			} else {
				printlnFn("Available commands: register, login, devices, pair, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "dashboard", "d":
			err = a.Dashboard(ctx)
		case "history", "h":
			err = a.History(ctx)
		case "record":
			err = a.Record(ctx)
		case "addsupporter":
			err = a.AddSupporter(ctx)
		case "supporters":
			err = a.Supporters(ctx)
		case "sos":
			err = a.SOS(ctx)
		case "devices":
			err = a.Devices(ctx)
		case "pair":
			err = a.Pair(ctx, args)
		case "export":
			err = a.Export(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(describeError(err))
		}
	}
}

// describeError turns a handler error into a line for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return "Please log in first."
	case errors.Is(err, common.ErrorValidation):
		return "Invalid input: " + strings.TrimPrefix(err.Error(), common.ErrorValidation.Error()+": ")
	case errors.Is(err, common.ErrorNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, common.ErrStorage):
		return "Storage is unavailable, please try again."
	}
	return "Error: " + err.Error()
}
