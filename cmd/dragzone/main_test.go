package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/dragzone/internal/config"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Config{
		Drag: config.DragConfig{
			Clone:      true,
			Opacity:    0.5,
			ZIndex:     3,
			YOnly:      true,
			OffsetX:    2,
			OffsetY:    1,
			EdgeMargin: 0,
		},
		Target: config.TargetConfig{HighlightClass: "over"},
		Items: []config.Item{
			{Label: "a", Keys: []string{"k"}, Data: "payload"},
			{Label: "b"},
		},
		Bins: []config.Bin{{Name: "bin", Keys: []string{"k"}, Clipboard: true}},
	}

	opts := options(cfg, slog.Default(), nil)
	assert.True(t, opts.Source.DragClone)
	assert.Equal(t, 0.5, opts.Source.Opacity)
	assert.Equal(t, 3, opts.Source.ZIndex)
	assert.True(t, opts.Source.YOnly)
	assert.Equal(t, 2, opts.Source.OffsetX)
	assert.Equal(t, 0, opts.Source.EdgeMargin)
	assert.Equal(t, "over", opts.Target.HighlightClass)

	require.Len(t, opts.Items, 2)
	assert.Equal(t, "payload", opts.Items[0].Data)
	assert.Nil(t, opts.Items[1].Data)
	require.Len(t, opts.Bins, 1)
	assert.True(t, opts.Bins[0].Clipboard)
	assert.NotNil(t, opts.Clipboard)
}

func TestNewLogger(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "loud"})
	require.Error(t, err)

	logger, closeLog, err := newLogger(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	logger.Info("dropped")
	closeLog()

	path := filepath.Join(t.TempDir(), "dragzone.log")
	logger, closeLog, err = newLogger(config.LogConfig{File: path, Level: "warn"})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown")
	assert.NotContains(t, string(data), "hidden")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := versionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dragzone "+version)
}
