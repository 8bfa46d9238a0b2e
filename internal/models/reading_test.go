package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReading_String(t *testing.T) {
	assert.Equal(t, "148/96", Reading{Systolic: 148, Diastolic: 96}.String())
}

func TestReading_Elevated(t *testing.T) {
	tests := []struct {
		sys, dia int
		want     bool
	}{
		{120, 80, false},
		{139, 89, false},
		{140, 80, true},
		{130, 90, true},
		{182, 121, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Reading{Systolic: tt.sys, Diastolic: tt.dia}.Elevated(), "%d/%d", tt.sys, tt.dia)
	}
}
