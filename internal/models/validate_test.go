package models

import (
	"testing"
	"time"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		pin     string
		wantErr bool
	}{
		{"1234", false},
		{"0000", false},
		{"123", true},
		{"12345", true},
		{"12a4", true},
		{"", true},
		{"١٢٣٤", true},
	}
	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			err := ValidatePIN(tt.pin)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrorValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePINConfirmation(t *testing.T) {
	assert.NoError(t, ValidatePINConfirmation("1234", "1234"))
	assert.ErrorIs(t, ValidatePINConfirmation("1234", "4321"), common.ErrorValidation)
	assert.ErrorIs(t, ValidatePINConfirmation("12", "12"), common.ErrorValidation)
}

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration("Jane Doe", "0771111111", "SRRH-01"))
	assert.ErrorIs(t, ValidateRegistration(" ", "0771111111", "SRRH-01"), common.ErrorValidation)
	assert.ErrorIs(t, ValidateRegistration("Jane Doe", "", "SRRH-01"), common.ErrorValidation)
	assert.ErrorIs(t, ValidateRegistration("Jane Doe", "0771111111", ""), common.ErrorValidation)
}

func TestParseVitals(t *testing.T) {
	sys, dia, hr, err := ParseVitals("148", " 96 ", "")
	require.NoError(t, err)
	assert.Equal(t, 148, sys)
	assert.Equal(t, 96, dia)
	assert.Equal(t, 0, hr)

	_, _, hr, err = ParseVitals("132", "84", "71")
	require.NoError(t, err)
	assert.Equal(t, 71, hr)

	_, _, _, err = ParseVitals("abc", "84", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, _, _, err = ParseVitals("132", "-1", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, _, _, err = ParseVitals("132", "84", "fast")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestParseSex(t *testing.T) {
	s, err := ParseSex("F")
	require.NoError(t, err)
	assert.Equal(t, SexFemale, s)

	s, err = ParseSex("male")
	require.NoError(t, err)
	assert.Equal(t, SexMale, s)

	_, err = ParseSex("other")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestReading_StringWithTimestamp(t *testing.T) {
	r := Reading{Systolic: 148, Diastolic: 96, Timestamp: time.Now()}
	assert.Equal(t, "148/96", r.String())
}
