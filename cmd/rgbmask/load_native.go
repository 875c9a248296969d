//go:build !purego && !js

package main

import (
	"fmt"

	"gocv.io/x/gocv"

	rm "rgbmask/pkg/rgbmask"
)

func loadImage(path string) (*rm.PixelBuffer, error) {
	src := gocv.IMRead(path, gocv.IMReadUnchanged)
	if src.Empty() {
		return nil, fmt.Errorf("could not load image: %s", path)
	}
	defer src.Close()

	// 16-bit inputs are scaled down to 8 bits per channel.
	depth8 := gocv.NewMat()
	defer depth8.Close()
	if src.Type()&7 == gocv.MatTypeCV16U {
		src.ConvertToWithParams(&depth8, gocv.MatTypeCV8U, 1.0/257.0, 0)
	} else {
		src.CopyTo(&depth8)
	}

	var code gocv.ColorConversionCode
	switch depth8.Channels() {
	case 1:
		code = gocv.ColorGrayToRGBA
	case 3:
		code = gocv.ColorBGRToRGBA
	case 4:
		code = gocv.ColorBGRAToRGBA
	default:
		return nil, fmt.Errorf("%s: unsupported channel count %d", path, depth8.Channels())
	}

	rgba := gocv.NewMat()
	defer rgba.Close()
	gocv.CvtColor(depth8, &rgba, code)

	buf := rm.NewPixelBuffer(rgba.Cols(), rgba.Rows())
	copy(buf.Pix, rgba.ToBytes())
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}
