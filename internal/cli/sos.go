package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/models"
)

// AddSupporter asks for a supporter and saves it for the signed-in account.
func (a *App) AddSupporter(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	name, err := a.ask("Supporter name")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	sexText, err := a.ask("Sex (male/female)")
	if err != nil {
		return err
	}
	sex, err := models.ParseSex(sexText)
	if err != nil {
		return err
	}
	phone1, err := a.ask("Phone number")
	if err != nil {
		return err
	}
	if strings.TrimSpace(phone1) == "" {
		return fmt.Errorf("%w: phone number is required", common.ErrorValidation)
	}
	phone2, err := a.ask("Second phone number (optional)")
	if err != nil {
		return err
	}

	if _, err := a.sos.AddSupporter(a.requestContext(ctx), name, sex, phone1, phone2); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Supporter %s added.\n", name)
	return nil
}

func (a *App) Supporters(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	list, err := a.sos.Supporters(a.requestContext(ctx))
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No supporters yet. Use 'addsupporter' to add one.")
		return nil
	}
	for _, s := range list {
		phones := s.Phone1
		if s.Phone2 != "" {
			phones += ", " + s.Phone2
		}
		fmt.Fprintf(a.out, "%d. %s (%s) %s\n", s.ID, s.Name, s.Sex, phones)
	}
	return nil
}

// SOS alerts every supporter of the signed-in account.
func (a *App) SOS(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	alert, err := a.sos.Trigger(a.requestContext(ctx))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "SOS sent to %d supporter(s).\n", len(alert.Supporters))
	return nil
}
