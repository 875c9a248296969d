package rgbmask

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	cfg := ThresholdConfig{Red: ChannelRange{100, 200}, Green: ChannelRange{100, 200}, Blue: ChannelRange{100, 200}}
	src := rowBuffer(
		color.NRGBA{0, 0, 0, 255},
		color.NRGBA{150, 0, 0, 255},
		color.NRGBA{150, 150, 0, 255},
		color.NRGBA{150, 150, 150, 255},
		color.NRGBA{150, 150, 150, 0},
	)
	mask, err := Apply(src, cfg)
	require.NoError(t, err)

	s := Summarize(mask)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, [4]int{1, 1, 1, 2}, s.Levels)
	assert.InDelta(t, 0.4, s.Coverage(), 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Coverage())
}
