package cli

import (
	"context"
	"fmt"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/models"
)

// getSimpleText and getPIN are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPIN = GetPIN

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// askPIN reads a PIN and returns it as a string; the raw bytes are wiped.
func (a *App) askPIN(prompt string) (string, error) {
	b, err := getPIN(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)
	return string(b), nil
}

// Register asks for the registration form, validates it and creates the
// account. On success the user is signed in.
func (a *App) Register(ctx context.Context) error {
	fullName, err := a.ask("Full name")
	if err != nil {
		return err
	}
	phone, err := a.ask("Phone number")
	if err != nil {
		return err
	}
	patientID, err := a.ask("Patient ID")
	if err != nil {
		return err
	}
	if err := models.ValidateRegistration(fullName, phone, patientID); err != nil {
		return err
	}

	pin, err := a.askPIN(fmt.Sprintf("Choose a %d-digit PIN", models.PINLength))
	if err != nil {
		return err
	}
	confirm, err := a.askPIN("Repeat PIN")
	if err != nil {
		return err
	}
	if err := models.ValidatePINConfirmation(pin, confirm); err != nil {
		return err
	}

	ok, err := a.controller.Register(ctx, fullName, phone, patientID, pin)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "An account with this phone number or patient ID already exists.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", fullName)
	return nil
}

// Login asks for phone and PIN. A wrong phone and a wrong PIN are reported
// the same way.
func (a *App) Login(ctx context.Context) error {
	phone, err := a.ask("Phone number")
	if err != nil {
		return err
	}
	pin, err := a.askPIN("PIN")
	if err != nil {
		return err
	}
	if err := models.ValidatePIN(pin); err != nil {
		return err
	}

	ok, err := a.controller.Login(ctx, phone, pin)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Invalid phone number or PIN.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.controller.CurrentAccount().FullName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}
	a.controller.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
