package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rm "rgbmask/pkg/rgbmask"
)

func parseFlags(t *testing.T, args ...string) (rm.ThresholdConfig, error) {
	t.Helper()
	opts := &options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.Flags().Parse(args))
	return thresholds(cmd.Flags(), opts)
}

func TestThresholdsDefaults(t *testing.T) {
	cfg, err := parseFlags(t)
	require.NoError(t, err)
	assert.Equal(t, rm.DefaultThresholdConfig(), cfg)
}

func TestThresholdsFlags(t *testing.T) {
	cfg, err := parseFlags(t, "--red-min", "200", "--red-max", "50", "--blue-max", "10")
	require.NoError(t, err)
	assert.Equal(t, rm.ChannelRange{Min: 200, Max: 50}, cfg.Red)
	assert.Equal(t, rm.FullRange, cfg.Green)
	assert.Equal(t, rm.ChannelRange{Min: 0, Max: 10}, cfg.Blue)
}

func TestThresholdsFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("red: {min: 10, max: 20}\ngreen: {min: 30, max: 40}\n"), 0o644))

	cfg, err := parseFlags(t, "--config", path, "--green-max", "99")
	require.NoError(t, err)
	assert.Equal(t, rm.ChannelRange{Min: 10, Max: 20}, cfg.Red)
	assert.Equal(t, rm.ChannelRange{Min: 30, Max: 99}, cfg.Green)
	assert.Equal(t, rm.FullRange, cfg.Blue)
}

func TestThresholdsRejectsOutOfRange(t *testing.T) {
	_, err := parseFlags(t, "--green-min", "256")
	assert.ErrorIs(t, err, rm.ErrInvalidRange)
}
