//go:build !purego && !js

package rgbmask

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Mat wraps gocv.Mat for the native OpenCV backend.
type Mat struct {
	m gocv.Mat
}

func NewMat() Mat           { return Mat{m: gocv.NewMat()} }
func (mat Mat) Rows() int   { return mat.m.Rows() }
func (mat Mat) Cols() int   { return mat.m.Cols() }
func (mat Mat) Empty() bool { return mat.m.Empty() }
func (mat *Mat) Close()     { mat.m.Close() }

// NewMatFromRGBA wraps an interleaved RGBA band as a 4-channel 8-bit Mat.
func NewMatFromRGBA(pix []byte, rows, cols int) (Mat, error) {
	m, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC4, pix)
	if err != nil {
		return Mat{}, fmt.Errorf("wrapping %dx%d band: %w", cols, rows, err)
	}
	return Mat{m: m}, nil
}

// CopyBytesTo copies the Mat's pixel data into dst.
func (mat Mat) CopyBytesTo(dst []byte) {
	copy(dst, mat.m.ToBytes())
}

// --- CV operations ---

func splitChannels(src Mat) [4]Mat {
	var planes [4]Mat
	for i, p := range gocv.Split(src.m) {
		if i < 4 {
			planes[i] = Mat{m: p}
		} else {
			p.Close()
		}
	}
	return planes
}

func mergeChannels(planes [4]Mat, dst *Mat) {
	mv := []gocv.Mat{planes[0].m, planes[1].m, planes[2].m, planes[3].m}
	gocv.Merge(mv, &dst.m)
}

func inRangeScalar(src Mat, lower, upper uint8, dst *Mat) {
	lo := gocv.NewScalar(float64(lower), 0, 0, 0)
	hi := gocv.NewScalar(float64(upper), 0, 0, 0)
	gocv.InRangeWithScalar(src.m, lo, hi, &dst.m)
}

func bitwiseNot(src Mat, dst *Mat) {
	gocv.BitwiseNot(src.m, &dst.m)
}

// channelMask sets dst to 255 where src passes r and 0 elsewhere. A wrapped
// range is the complement of the open gap (Max, Min).
func channelMask(src Mat, r ChannelRange, dst *Mat) {
	if !r.Inverted() {
		inRangeScalar(src, uint8(r.Min), uint8(r.Max), dst)
		return
	}
	gap := NewMat()
	defer gap.Close()
	// Min == Max+1 leaves an empty gap: InRange yields all zeros and every value passes.
	inRangeScalar(src, uint8(r.Max+1), uint8(r.Min-1), &gap)
	bitwiseNot(gap, dst)
}

// averageMasks computes (a+b+c)/3 of three 0/255 masks. Each mask is scaled to
// 0/85 first so the sum never saturates and the result is exact.
func averageMasks(a, b, c Mat, dst *Mat) {
	var scaled [3]gocv.Mat
	for i, src := range []Mat{a, b, c} {
		scaled[i] = gocv.NewMat()
		defer scaled[i].Close()
		src.m.ConvertToWithParams(&scaled[i], gocv.MatTypeCV8U, 1.0/3.0, 0)
	}
	sum := gocv.NewMat()
	defer sum.Close()
	gocv.Add(scaled[0], scaled[1], &sum)
	gocv.Add(sum, scaled[2], &dst.m)
}
