package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opio/bpmonitor/internal/common"
)

// PINLength is the number of digits in an account PIN.
const PINLength = 4

// ValidatePIN checks that pin is exactly four ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) != PINLength {
		return fmt.Errorf("%w: PIN must be %d digits", common.ErrorValidation, PINLength)
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: PIN must contain digits only", common.ErrorValidation)
		}
	}
	return nil
}

// ValidatePINConfirmation checks pin and that confirm repeats it.
func ValidatePINConfirmation(pin, confirm string) error {
	if err := ValidatePIN(pin); err != nil {
		return err
	}
	if pin != confirm {
		return fmt.Errorf("%w: PINs do not match", common.ErrorValidation)
	}
	return nil
}

// ValidateRegistration checks the free-text registration fields.
func ValidateRegistration(fullName, phone, patientID string) error {
	switch {
	case strings.TrimSpace(fullName) == "":
		return fmt.Errorf("%w: full name is required", common.ErrorValidation)
	case strings.TrimSpace(phone) == "":
		return fmt.Errorf("%w: phone number is required", common.ErrorValidation)
	case strings.TrimSpace(patientID) == "":
		return fmt.Errorf("%w: patient ID is required", common.ErrorValidation)
	}
	return nil
}

// ParseVitals parses the manual-entry fields. heartRate may be empty (0).
func ParseVitals(systolic, diastolic, heartRate string) (sys, dia, hr int, err error) {
	if sys, err = parsePositive("systolic", systolic); err != nil {
		return 0, 0, 0, err
	}
	if dia, err = parsePositive("diastolic", diastolic); err != nil {
		return 0, 0, 0, err
	}
	if strings.TrimSpace(heartRate) != "" {
		if hr, err = parsePositive("heart rate", heartRate); err != nil {
			return 0, 0, 0, err
		}
	}
	return sys, dia, hr, nil
}

func parsePositive(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", common.ErrorValidation, field)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", common.ErrorValidation, field)
	}
	return v, nil
}

// ParseSex accepts "male"/"m" and "female"/"f" in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	}
	return "", fmt.Errorf("%w: sex must be Male or Female", common.ErrorValidation)
}
