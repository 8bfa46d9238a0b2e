package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/logging"
	"github.com/opio/bpmonitor/internal/models"
	"github.com/opio/bpmonitor/internal/notify"
)

// SupporterStore is the storage the SOS flow needs.
type SupporterStore interface {
	InsertSupporter(ctx context.Context, s *models.Supporter) (int64, error)
	ListSupportersForAccount(ctx context.Context, accountID int64) ([]models.Supporter, error)
	EmergencySnapshot(ctx context.Context, accountID int64) ([]models.Supporter, *models.Reading, error)
}

// SOSService manages supporters and raises SOS alerts to all of them.
type SOSService struct {
	store      SupporterStore
	dispatcher notify.Dispatcher
	logger     logging.Logger
	now        func() time.Time
}

func NewSOSService(store SupporterStore, dispatcher notify.Dispatcher, logger logging.Logger) *SOSService {
	return &SOSService{store: store, dispatcher: dispatcher, logger: logger, now: time.Now}
}

// AddSupporter adds a supporter to the signed-in account.
func (s *SOSService) AddSupporter(ctx context.Context, name string, sex models.Sex, phone1, phone2 string) (int64, error) {
	acc, err := requestAccount(ctx)
	if err != nil {
		return 0, err
	}

	id, err := s.store.InsertSupporter(ctx, &models.Supporter{
		AccountID: acc.ID,
		Name:      name,
		Sex:       sex,
		Phone1:    phone1,
		Phone2:    phone2,
	})
	if err != nil {
		return 0, fmt.Errorf("add supporter: %w", err)
	}
	s.logger.Info(ctx, "supporter added", "account_id", acc.ID, "supporter_id", id)
	return id, nil
}

// Supporters lists the supporters of the signed-in account.
func (s *SOSService) Supporters(ctx context.Context) ([]models.Supporter, error) {
	acc, err := requestAccount(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.store.ListSupportersForAccount(ctx, acc.ID)
	if err != nil {
		return nil, fmt.Errorf("list supporters: %w", err)
	}
	return list, nil
}

// Trigger sends an SOS alert with the latest reading to every supporter
// of the signed-in account. It fails with common.ErrorNotFound when the
// account has no supporters.
func (s *SOSService) Trigger(ctx context.Context) (notify.Alert, error) {
	acc, err := requestAccount(ctx)
	if err != nil {
		return notify.Alert{}, err
	}

	supporters, latest, err := s.store.EmergencySnapshot(ctx, acc.ID)
	if err != nil {
		return notify.Alert{}, fmt.Errorf("sos: %w", err)
	}
	if len(supporters) == 0 {
		return notify.Alert{}, fmt.Errorf("sos: no supporters: %w", common.ErrorNotFound)
	}

	alert := notify.NewAlert(uuid.NewString(), *acc, latest, supporters, s.now())
	if err := s.dispatcher.Dispatch(ctx, alert); err != nil {
		s.logger.Error(ctx, "sos dispatch failed", "account_id", acc.ID, "alert_id", alert.ID, "error", err)
		return alert, fmt.Errorf("sos: %w", err)
	}
	s.logger.Warn(ctx, "sos raised", "account_id", acc.ID, "alert_id", alert.ID, "supporters", len(supporters))
	return alert, nil
}
