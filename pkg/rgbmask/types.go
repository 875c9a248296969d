package rgbmask

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var (
	// ErrDimensionMismatch is returned when a pixel buffer's length does not match its declared size.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidRange is returned when a channel bound lies outside [0, 255].
	ErrInvalidRange = errors.New("invalid range")
)

// Channel identifies one of the thresholded color components.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Channels lists the thresholded channels in pixel order.
var Channels = [3]Channel{Red, Green, Blue}

// PixelBuffer is a non-premultiplied RGBA raster, row-major, top to bottom.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed buffer of the given size.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		return &PixelBuffer{Width: width, Height: height}
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Validate checks the size invariant len(Pix) == Width*Height*4.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrDimensionMismatch)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: non-positive size %dx%d", ErrDimensionMismatch, b.Width, b.Height)
	}
	if b.Width > math.MaxInt/4/b.Height {
		return fmt.Errorf("%w: %dx%d too large", ErrDimensionMismatch, b.Width, b.Height)
	}
	if want := b.Width * b.Height * 4; len(b.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrDimensionMismatch, b.Width, b.Height, want, len(b.Pix))
	}
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}

func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// rows returns the sub-slice covering rows [y0, y1).
func (b *PixelBuffer) rows(y0, y1 int) []byte {
	stride := b.Width * 4
	return b.Pix[y0*stride : y1*stride]
}

// ChannelRange holds the inclusive bounds of a channel test. Min may exceed Max,
// in which case the range wraps: values <= Max or >= Min pass.
type ChannelRange struct {
	Min int `yaml:"min" validate:"min=0,max=255"`
	Max int `yaml:"max" validate:"min=0,max=255"`
}

// FullRange passes every channel value.
var FullRange = ChannelRange{Min: 0, Max: 255}

// Inverted reports whether the range wraps around the value space.
func (r ChannelRange) Inverted() bool {
	return r.Min > r.Max
}

// Contains is the wrap-aware range test.
func (r ChannelRange) Contains(v uint8) bool {
	x := int(v)
	if r.Min <= r.Max {
		return x >= r.Min && x <= r.Max
	}
	return x <= r.Max || x >= r.Min
}

func (r ChannelRange) String() string {
	if r.Inverted() {
		return fmt.Sprintf("[0, %d] u [%d, 255]", r.Max, r.Min)
	}
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// ThresholdConfig holds one range per channel. It is a plain value: callers change
// a copy and call Apply again.
type ThresholdConfig struct {
	Red   ChannelRange `yaml:"red"`
	Green ChannelRange `yaml:"green"`
	Blue  ChannelRange `yaml:"blue"`
}

// DefaultThresholdConfig lets every pixel pass on every channel.
func DefaultThresholdConfig() ThresholdConfig {
	return ThresholdConfig{Red: FullRange, Green: FullRange, Blue: FullRange}
}

// Range returns the configured range of channel c.
func (c ThresholdConfig) Range(ch Channel) ChannelRange {
	switch ch {
	case Red:
		return c.Red
	case Green:
		return c.Green
	default:
		return c.Blue
	}
}

// WithRange returns a copy of c with the range of ch replaced.
func (c ThresholdConfig) WithRange(ch Channel, r ChannelRange) ThresholdConfig {
	switch ch {
	case Red:
		c.Red = r
	case Green:
		c.Green = r
	case Blue:
		c.Blue = r
	}
	return c
}

// WithMin returns a copy of c with the lower bound of ch set to v. No ordering
// against the upper bound is enforced.
func (c ThresholdConfig) WithMin(ch Channel, v int) ThresholdConfig {
	r := c.Range(ch)
	r.Min = v
	return c.WithRange(ch, r)
}

// WithMax returns a copy of c with the upper bound of ch set to v.
func (c ThresholdConfig) WithMax(ch Channel, v int) ThresholdConfig {
	r := c.Range(ch)
	r.Max = v
	return c.WithRange(ch, r)
}

func (c ThresholdConfig) String() string {
	return fmt.Sprintf("R=%s G=%s B=%s", c.Red, c.Green, c.Blue)
}
