package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_ParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}

func Test_With_CarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewFromZap(zap.New(core)).With(zap.String("owner_id", "house-1"))

	log.Info("lots listed")
	log.Debug("dropped")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "house-1", entries[0].ContextMap()["owner_id"])
}
