package cli

import (
	"context"
	"testing"
	"time"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := nowFn
	nowFn = func() time.Time { return at }
	t.Cleanup(func() { nowFn = orig })
}

func TestDashboard(t *testing.T) {
	t.Run("requires login", func(t *testing.T) {
		a, _ := newTestApp(&fakeController{})
		assert.ErrorIs(t, a.Dashboard(context.Background()), common.ErrorUnauthorized)
	})

	t.Run("no readings", func(t *testing.T) {
		a, out := newTestApp(signedIn())
		require.NoError(t, a.Dashboard(context.Background()))
		assert.Contains(t, out.String(), "Hello, Jane Doe (patient P-001)")
		assert.Contains(t, out.String(), "No readings yet.")
	})

	t.Run("latest reading and paired device", func(t *testing.T) {
		ctrl := signedIn()
		ctrl.readings = []models.Reading{
			{Systolic: 132, Diastolic: 84, HeartRate: 71, Timestamp: time.Now(), Manual: true},
			{Systolic: 148, Diastolic: 96, Timestamp: time.Now().Add(-time.Hour), Manual: true},
		}
		a, out := newTestApp(ctrl)
		_, err := a.pairing.Pair(context.Background(), "mi-band-7")
		require.NoError(t, err)

		require.NoError(t, a.Dashboard(context.Background()))
		assert.Contains(t, out.String(), "132/84 mmHg, 71 bpm")
		assert.NotContains(t, out.String(), "148/96")
		assert.Contains(t, out.String(), "Paired device: Xiaomi Mi Band 7")
	})
}

func TestHistory(t *testing.T) {
	t.Run("requires login", func(t *testing.T) {
		a, _ := newTestApp(&fakeController{})
		assert.ErrorIs(t, a.History(context.Background()), common.ErrorUnauthorized)
	})

	t.Run("empty", func(t *testing.T) {
		a, out := newTestApp(signedIn())
		require.NoError(t, a.History(context.Background()))
		assert.Equal(t, "No readings yet.\n", out.String())
	})

	t.Run("marks elevated readings", func(t *testing.T) {
		at := time.Date(2024, 3, 1, 8, 30, 0, 0, time.Local)
		ctrl := signedIn()
		ctrl.readings = []models.Reading{
			{Systolic: 132, Diastolic: 84, Timestamp: at, Manual: true},
			{Systolic: 148, Diastolic: 96, Timestamp: at.Add(-time.Hour), Notes: "after coffee"},
		}
		a, out := newTestApp(ctrl)

		require.NoError(t, a.History(context.Background()))
		assert.Equal(t,
			"  2024-03-01 08:30  132/84 mmHg\n"+
				"! 2024-03-01 07:30  148/96 mmHg (device) - after coffee\n",
			out.String())
	})
}

func TestRecord(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)

	t.Run("stores manual reading", func(t *testing.T) {
		stubNow(t, at)
		ctrl := signedIn()
		a, out := newTestApp(ctrl, "148", "96", "", "dizzy")

		require.NoError(t, a.Record(context.Background()))
		require.Len(t, ctrl.recorded, 1)
		assert.Equal(t, models.Reading{
			Systolic: 148, Diastolic: 96, Timestamp: at, Manual: true, Notes: "dizzy",
		}, ctrl.recorded[0])
		assert.Contains(t, out.String(), "Saved 148/96")
		assert.Contains(t, out.String(), "This reading is high.")
	})

	t.Run("normal reading has no warning", func(t *testing.T) {
		ctrl := signedIn()
		a, out := newTestApp(ctrl, "120", "80", "65", "")

		require.NoError(t, a.Record(context.Background()))
		require.Len(t, ctrl.recorded, 1)
		assert.Equal(t, 65, ctrl.recorded[0].HeartRate)
		assert.NotContains(t, out.String(), "high")
	})

	t.Run("invalid vitals", func(t *testing.T) {
		ctrl := signedIn()
		a, _ := newTestApp(ctrl, "abc", "80", "")

		assert.ErrorIs(t, a.Record(context.Background()), common.ErrorValidation)
		assert.Empty(t, ctrl.recorded)
	})

	t.Run("requires login", func(t *testing.T) {
		a, _ := newTestApp(&fakeController{}, "120", "80", "", "")
		assert.ErrorIs(t, a.Record(context.Background()), common.ErrorUnauthorized)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := signedIn()
		ctrl.recErr = common.ErrStorage
		a, _ := newTestApp(ctrl, "120", "80", "", "")
		assert.ErrorIs(t, a.Record(context.Background()), common.ErrStorage)
	})
}
