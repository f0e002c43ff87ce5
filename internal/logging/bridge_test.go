package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgeForwardsMessageAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	logger := NewBridge(base)

	logger.Info("image loaded", "width", 640, "height", 480)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "image loaded", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, int64(640), entry.Data["width"])
	assert.Equal(t, int64(480), entry.Data["height"])
}

func TestBridgeLevelMapping(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	logger := NewBridge(base)

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, logrus.WarnLevel, entries[2].Level)
	assert.Equal(t, logrus.ErrorLevel, entries[3].Level)
}

func TestBridgeRespectsBaseLevel(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.WarnLevel)
	logger := NewBridge(base)

	logger.Info("dropped")
	logger.Warn("kept")

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Message)
}

func TestBridgeWithAttrsAndGroups(t *testing.T) {
	base, hook := test.NewNullLogger()
	logger := NewBridge(base).With("component", "pipeline").WithGroup("run")

	logger.Info("replay completed", "steps", 3)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "pipeline", entry.Data["component"])
	assert.Equal(t, int64(3), entry.Data["run.steps"])
}
