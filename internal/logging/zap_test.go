package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "dbg")
	log.Info(ctx, "inf", "account_id", int64(3))
	log.With("component", "sos").Warn(ctx, "wrn")
	log.Error(ctx, "err", "reason", "boom")

	entries := logs.All()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, "inf", entries[1].Message)
		assert.Equal(t, int64(3), entries[1].ContextMap()["account_id"])
		assert.Equal(t, "sos", entries[2].ContextMap()["component"])
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	}
}
