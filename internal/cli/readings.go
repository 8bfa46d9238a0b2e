package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/models"
)

const readingTimeLayout = "2006-01-02 15:04"

// nowFn is a test seam for the timestamp of manual readings.
var nowFn = time.Now

// Dashboard shows the greeting, the latest reading and the paired device.
func (a *App) Dashboard(ctx context.Context) error {
	acc := a.controller.CurrentAccount()
	if acc == nil {
		return common.ErrorUnauthorized
	}

	fmt.Fprintf(a.out, "Hello, %s (patient %s)\n", acc.FullName, acc.PatientID)
	if latest := a.controller.LatestReading(); latest != nil {
		fmt.Fprintf(a.out, "Latest: %s\n", formatReading(*latest))
	} else {
		fmt.Fprintln(a.out, "No readings yet. Use 'record' to add one.")
	}
	if d, ok := a.pairing.Paired(); ok {
		fmt.Fprintf(a.out, "Paired device: %s\n", d.Name)
	}
	return nil
}

// History lists readings newest first; elevated ones are marked with '!'.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	list := a.controller.Readings()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No readings yet.")
		return nil
	}
	for _, r := range list {
		mark := " "
		if r.Elevated() {
			mark = "!"
		}
		fmt.Fprintf(a.out, "%s %s\n", mark, formatReading(r))
	}
	return nil
}

// Record asks for a manual reading and stores it for the signed-in account.
func (a *App) Record(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	systolic, err := a.ask("Systolic (mmHg)")
	if err != nil {
		return err
	}
	diastolic, err := a.ask("Diastolic (mmHg)")
	if err != nil {
		return err
	}
	heartRate, err := a.ask("Heart rate (bpm, optional)")
	if err != nil {
		return err
	}
	sys, dia, hr, err := models.ParseVitals(systolic, diastolic, heartRate)
	if err != nil {
		return err
	}
	notes, err := a.ask("Notes (optional)")
	if err != nil {
		return err
	}

	r := models.Reading{
		Systolic:  sys,
		Diastolic: dia,
		HeartRate: hr,
		Timestamp: nowFn(),
		Manual:    true,
		Notes:     notes,
	}
	if err := a.controller.RecordReading(ctx, r); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %s\n", r)
	if r.Elevated() {
		fmt.Fprintln(a.out, "This reading is high. Consider 'sos' if you feel unwell.")
	}
	return nil
}

func formatReading(r models.Reading) string {
	s := fmt.Sprintf("%s  %s mmHg", r.Timestamp.Local().Format(readingTimeLayout), r)
	if r.HeartRate > 0 {
		s += fmt.Sprintf(", %d bpm", r.HeartRate)
	}
	if !r.Manual {
		s += " (device)"
	}
	if r.Notes != "" {
		s += " - " + r.Notes
	}
	return s
}
