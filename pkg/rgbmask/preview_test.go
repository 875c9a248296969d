package rgbmask

import (
	"bytes"
	"image/jpeg"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview(t *testing.T) {
	src := randomBuffer(t, 120, 60, 4)
	cfg := DefaultThresholdConfig().WithMin(Red, 200).WithMax(Red, 50)
	mask, err := Apply(src, cfg)
	require.NoError(t, err)

	for _, opts := range []PreviewOptions{{}, {Width: 400, FontSize: 14}} {
		img, err := RenderPreview(src, mask, cfg, opts)
		require.NoError(t, err)
		wantW := opts.Width
		if wantW == 0 {
			wantW = defaultPreviewWidth
		}
		assert.Equal(t, wantW, img.Bounds().Dx())
		assert.Greater(t, img.Bounds().Dy(), (wantW-previewGap)/2*src.Height/src.Width)
	}
}

func TestRenderPreviewBytes(t *testing.T) {
	src := randomBuffer(t, 32, 32, 8)
	mask, err := Apply(src, DefaultThresholdConfig())
	require.NoError(t, err)

	data, err := RenderPreviewBytes(src, mask, DefaultThresholdConfig(), PreviewOptions{Width: 200})
	require.NoError(t, err)
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)

	path := filepath.Join(t.TempDir(), "preview.jpg")
	require.NoError(t, RenderPreviewFile(path, src, mask, DefaultThresholdConfig(), PreviewOptions{Width: 200}))
	assert.FileExists(t, path)
}

func TestRenderPreviewSizeMismatch(t *testing.T) {
	_, err := RenderPreview(NewPixelBuffer(4, 4), NewPixelBuffer(4, 5), DefaultThresholdConfig(), PreviewOptions{})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPreviewCaptions(t *testing.T) {
	cfg := DefaultThresholdConfig().WithMin(Green, 200).WithMax(Green, 50)
	lines := previewCaptions(cfg, MaskStats{Total: 4, Levels: [4]int{0, 0, 2, 2}})
	require.Len(t, lines, 4)
	assert.Equal(t, "Red Min Threshold: 0   Red Max Threshold: 255", lines[0])
	assert.Equal(t, "Green Min Threshold: 200   Green Max Threshold: 50   (wrapped)", lines[1])
	assert.Equal(t, "Coverage: 50.0% of 4 pixels", lines[3])
}
