package rgbmask

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
red:   {min: 200, max: 50}
green: {min: 10, max: 20}
`))
	require.NoError(t, err)
	assert.Equal(t, ChannelRange{200, 50}, cfg.Red)
	assert.Equal(t, ChannelRange{10, 20}, cfg.Green)
	assert.Equal(t, FullRange, cfg.Blue, "omitted channel keeps the full range")
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultThresholdConfig(), cfg)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		invalidRng bool
	}{
		{"out of range", "blue: {min: 0, max: 256}", true},
		{"negative", "red: {min: -1, max: 10}", true},
		{"not a number", "red: {min: low, max: 10}", false},
		{"unknown field", "alpha: {min: 0, max: 10}", false},
		{"second document", "red: {min: 1}\n---\nred: {min: 300}", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			require.Error(t, err)
			if tt.invalidRng {
				assert.ErrorIs(t, err, ErrInvalidRange)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidRange)
			}
		})
	}
}

func TestConfigRoundTripFile(t *testing.T) {
	want := ThresholdConfig{Red: ChannelRange{255, 0}, Green: ChannelRange{12, 34}, Blue: FullRange}
	data, err := MarshalConfig(want)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
