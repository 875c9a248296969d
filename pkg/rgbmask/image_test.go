package rgbmask

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromImageNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	img.SetNRGBA(5, 5, color.NRGBA{1, 2, 3, 4})
	img.SetNRGBA(7, 6, color.NRGBA{200, 100, 50, 128})

	buf := FromImage(img)
	assert.NoError(t, buf.Validate())
	assert.Equal(t, 3, buf.Width)
	assert.Equal(t, 2, buf.Height)
	assert.Equal(t, color.NRGBA{1, 2, 3, 4}, buf.At(0, 0))
	assert.Equal(t, color.NRGBA{200, 100, 50, 128}, buf.At(2, 1))
}

func TestFromImageConverts(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(1, 0, color.Gray{Y: 77})

	buf := FromImage(gray)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, buf.At(0, 0))
	assert.Equal(t, color.NRGBA{77, 77, 77, 255}, buf.At(1, 0))
}

func TestToImageSharesPixels(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	img := buf.ToImage()
	img.SetNRGBA(1, 1, color.NRGBA{9, 8, 7, 6})

	assert.Equal(t, color.NRGBA{9, 8, 7, 6}, buf.At(1, 1))
	assert.Equal(t, buf.Bounds(), img.Bounds())
}
