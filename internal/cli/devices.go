package cli

import (
	"context"
	"fmt"
	"strings"
)

// Devices lists nearby devices; the paired one is marked with '*'.
func (a *App) Devices(ctx context.Context) error {
	list, err := a.pairing.Discover(ctx)
	if err != nil {
		return err
	}
	paired, hasPaired := a.pairing.Paired()
	for _, d := range list {
		mark := " "
		if hasPaired && d.ID == paired.ID {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %-16s %s\n", mark, d.ID, d.Name)
	}
	return nil
}

// Pair pairs the device named in args, or asks for it.
func (a *App) Pair(ctx context.Context, args []string) error {
	key := strings.Join(args, " ")
	if key == "" {
		var err error
		if key, err = a.ask("Device ID or name"); err != nil {
			return err
		}
	}

	d, err := a.pairing.Pair(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Paired with %s.\n", d.Name)
	return nil
}
