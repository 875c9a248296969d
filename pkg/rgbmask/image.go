package rgbmask

import (
	"image"
	"image/color"
	"image/draw"
)

// FromImage converts a decoded image into a non-premultiplied RGBA buffer.
func FromImage(img image.Image) *PixelBuffer {
	b := img.Bounds()
	buf := NewPixelBuffer(b.Dx(), b.Dy())
	if buf.Pix == nil {
		return buf
	}
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < buf.Height; y++ {
			srcOff := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
			copy(buf.rows(y, y+1), nrgba.Pix[srcOff:srcOff+buf.Width*4])
		}
		return buf
	}
	dst := buf.ToImage()
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return buf
}

// ToImage returns an *image.NRGBA sharing the buffer's pixels.
func (b *PixelBuffer) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   b.Bounds(),
	}
}

// At returns the pixel at (x, y).
func (b *PixelBuffer) At(x, y int) color.NRGBA {
	off := (y*b.Width + x) * 4
	p := b.Pix[off : off+4 : off+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes the pixel at (x, y).
func (b *PixelBuffer) Set(x, y int, c color.NRGBA) {
	off := (y*b.Width + x) * 4
	p := b.Pix[off : off+4 : off+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}
