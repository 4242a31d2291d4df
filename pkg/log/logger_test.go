package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/loopon-client/pkg/log"
)

func TestLogger_Log_WritesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(log.LevelInfo, log.WithOutput(buf))

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "abc"})
	logger.WithField("route", "login").WithError(errors.New("boom")).Warn(ctx, "route resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "route resolved", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "abc", entry["requestID"])
	assert.Equal(t, "login", entry["route"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_Log_SkipsBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(log.LevelWarn, log.WithOutput(buf), log.WithFormat(log.FormatText))

	logger.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	logger.Error(context.Background(), "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_Disabled_ReturnsStub(t *testing.T) {
	logger := log.New(log.LevelDisabled)
	ctx := context.Background()

	assert.Equal(t, ctx, logger.WithContext(ctx, log.Fields{"a": 1}))
	assert.NotPanics(t, func() { logger.WithError(errors.New("x")).Error(ctx, "nothing") })
}
