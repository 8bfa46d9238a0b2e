// Package notify delivers SOS alerts to an account's supporters.
//
// A Dispatcher is one delivery channel. LogDispatcher writes the alert to
// the application log, MQTTDispatcher publishes it to a broker topic and
// RedisStreamDispatcher appends it to a Redis stream. MultiDispatcher fans
// one alert out to several channels.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/opio/bpmonitor/internal/models"
)

// Dispatcher delivers an Alert.
type Dispatcher interface {
	Dispatch(ctx context.Context, a Alert) error
}

// Vitals is the reading attached to an alert.
type Vitals struct {
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	HeartRate int       `json:"heart_rate,omitempty"`
	TakenAt   time.Time `json:"taken_at"`
}

// Contact is one supporter to be notified.
type Contact struct {
	Name   string `json:"name"`
	Sex    string `json:"sex"`
	Phone1 string `json:"phone1"`
	Phone2 string `json:"phone2,omitempty"`
}

// Alert is an SOS raised by a patient.
type Alert struct {
	ID          string    `json:"id"`
	AccountID   int64     `json:"account_id"`
	PatientName string    `json:"patient_name"`
	Phone       string    `json:"phone"`
	PatientID   string    `json:"patient_id"`
	Latest      *Vitals   `json:"latest,omitempty"`
	Supporters  []Contact `json:"supporters"`
	RaisedAt    time.Time `json:"raised_at"`
}

// NewAlert builds the alert for acc. latest may be nil.
func NewAlert(id string, acc models.Account, latest *models.Reading, supporters []models.Supporter, at time.Time) Alert {
	a := Alert{
		ID:          id,
		AccountID:   acc.ID,
		PatientName: acc.FullName,
		Phone:       acc.Phone,
		PatientID:   acc.PatientID,
		Supporters:  make([]Contact, 0, len(supporters)),
		RaisedAt:    at,
	}
	if latest != nil {
		a.Latest = &Vitals{
			Systolic:  latest.Systolic,
			Diastolic: latest.Diastolic,
			HeartRate: latest.HeartRate,
			TakenAt:   latest.Timestamp,
		}
	}
	for _, s := range supporters {
		a.Supporters = append(a.Supporters, Contact{
			Name:   s.Name,
			Sex:    string(s.Sex),
			Phone1: s.Phone1,
			Phone2: s.Phone2,
		})
	}
	return a
}

func (a Alert) payload() ([]byte, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode alert: %w", err)
	}
	return b, nil
}

// MultiDispatcher sends every alert to all of its dispatchers, even when
// some of them fail.
type MultiDispatcher []Dispatcher

func (m MultiDispatcher) Dispatch(ctx context.Context, a Alert) error {
	var errs []error
	for _, d := range m {
		if err := d.Dispatch(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
