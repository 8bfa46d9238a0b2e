package cli

import "context"

// Root greets the user and runs the REPL on stdin until exit or EOF.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to bpmonitor (type 'help' for commands)")
	if acc := a.controller.CurrentAccount(); acc != nil {
		printlnFn("Signed in as", acc.FullName)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}
