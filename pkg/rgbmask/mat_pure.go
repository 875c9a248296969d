//go:build purego || js

package rgbmask

import "fmt"

// Mat is a pure Go 8-bit matrix with interleaved channels.
type Mat struct {
	data     []uint8
	rows     int
	cols     int
	channels int
}

func NewMat() Mat { return Mat{} }

func newMatWithSize(rows, cols, channels int) Mat {
	return Mat{
		data:     make([]uint8, rows*cols*channels),
		rows:     rows,
		cols:     cols,
		channels: channels,
	}
}

func (m Mat) Rows() int   { return m.rows }
func (m Mat) Cols() int   { return m.cols }
func (m Mat) Empty() bool { return m.data == nil || m.rows == 0 || m.cols == 0 }

func (m *Mat) Close() {
	m.data = nil
	m.rows = 0
	m.cols = 0
	m.channels = 0
}

// NewMatFromRGBA wraps an interleaved RGBA band as a 4-channel Mat without copying.
func NewMatFromRGBA(pix []byte, rows, cols int) (Mat, error) {
	if len(pix) != rows*cols*4 {
		return Mat{}, fmt.Errorf("wrapping %dx%d band: %d bytes", cols, rows, len(pix))
	}
	return Mat{data: pix, rows: rows, cols: cols, channels: 4}, nil
}

// CopyBytesTo copies the Mat's pixel data into dst.
func (m Mat) CopyBytesTo(dst []byte) {
	copy(dst, m.data)
}

// ensure (re)allocates m to the requested shape unless it already matches.
func (m *Mat) ensure(rows, cols, channels int) {
	if m.rows != rows || m.cols != cols || m.channels != channels || m.data == nil {
		*m = newMatWithSize(rows, cols, channels)
	}
}

// --- Pure Go CV operations ---

func splitChannels(src Mat) [4]Mat {
	var planes [4]Mat
	n := src.rows * src.cols
	for c := 0; c < 4; c++ {
		planes[c] = newMatWithSize(src.rows, src.cols, 1)
	}
	for i := 0; i < n; i++ {
		off := i * 4
		planes[0].data[i] = src.data[off]
		planes[1].data[i] = src.data[off+1]
		planes[2].data[i] = src.data[off+2]
		planes[3].data[i] = src.data[off+3]
	}
	return planes
}

func mergeChannels(planes [4]Mat, dst *Mat) {
	rows, cols := planes[0].Rows(), planes[0].Cols()
	dst.ensure(rows, cols, 4)
	for i := 0; i < rows*cols; i++ {
		off := i * 4
		dst.data[off] = planes[0].data[i]
		dst.data[off+1] = planes[1].data[i]
		dst.data[off+2] = planes[2].data[i]
		dst.data[off+3] = planes[3].data[i]
	}
}

// channelMask sets dst to 255 where src passes r and 0 elsewhere.
func channelMask(src Mat, r ChannelRange, dst *Mat) {
	dst.ensure(src.Rows(), src.Cols(), 1)
	for i, v := range src.data {
		if r.Contains(v) {
			dst.data[i] = 255
		} else {
			dst.data[i] = 0
		}
	}
}

// averageMasks computes (a+b+c)/3 with truncating integer division.
func averageMasks(a, b, c Mat, dst *Mat) {
	dst.ensure(a.Rows(), a.Cols(), 1)
	for i := range dst.data {
		sum := int(a.data[i]) + int(b.data[i]) + int(c.data[i])
		dst.data[i] = uint8(sum / 3)
	}
}
