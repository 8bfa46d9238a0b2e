package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		a, out := newTestApp(signedIn())
		require.NoError(t, a.Export(context.Background()))
		assert.Contains(t, out.String(), "Export is not configured")
	})

	t.Run("uploads", func(t *testing.T) {
		a, out := newTestApp(signedIn())
		a.config.S3Bucket = "bp"
		ex := &fakeExporter{key: "readings/P-001/x.xlsx"}
		a.exporter = ex

		require.NoError(t, a.Export(context.Background()))
		assert.Equal(t, "History exported to bp/readings/P-001/x.xlsx\n", out.String())
		require.NotNil(t, ex.ctxAccount)
		assert.Equal(t, int64(7), ex.ctxAccount.ID)
	})

	t.Run("error", func(t *testing.T) {
		a, _ := newTestApp(signedIn())
		a.exporter = &fakeExporter{err: errors.New("s3 down")}
		assert.EqualError(t, a.Export(context.Background()), "s3 down")
	})

	t.Run("requires login", func(t *testing.T) {
		a, _ := newTestApp(&fakeController{})
		a.exporter = &fakeExporter{}
		assert.ErrorIs(t, a.Export(context.Background()), common.ErrorUnauthorized)
	})
}
