package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Levels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "", "not-a-level"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			log := NewLogger(lvl)
			assert.NotNil(t, log)

			assert.NotPanics(t, func() {
				log.Info("test log", "level", lvl)
			})
		})
	}
}

func TestLogger_KeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Debug("debug msg", "k", 1)
	log.Info("info msg")
	log.Warn("warn msg", "reason", "html")
	log.Error("error msg", "error", "boom")

	assert.Equal(t, 4, logs.Len())

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "error msg", errs[0].Message)
		assert.Equal(t, "boom", errs[0].ContextMap()["error"])
	}

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if assert.Len(t, warns, 1) {
		assert.Equal(t, "html", warns[0].ContextMap()["reason"])
	}
}

func TestLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core)).With("component", "cache")

	log.Info("hello")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "cache", entries[0].ContextMap()["component"])
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("discarded", "error", "x")
	})
}
