package notify

import (
	"context"

	"github.com/opio/bpmonitor/internal/logging"
)

// LogDispatcher records alerts in the application log. It is the fallback
// channel when no broker is configured.
type LogDispatcher struct {
	logger logging.Logger
}

func NewLogDispatcher(logger logging.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, a Alert) error {
	for _, c := range a.Supporters {
		d.logger.Warn(ctx, "sos alert",
			"alert_id", a.ID,
			"account_id", a.AccountID,
			"patient_id", a.PatientID,
			"supporter", c.Name,
			"supporter_phone", c.Phone1,
		)
	}
	return nil
}
