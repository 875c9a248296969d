package rgbmask

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minBandRows keeps bands from getting so thin that per-band setup dominates.
const minBandRows = 16

// Filter applies a ThresholdConfig to pixel buffers, splitting the work into
// disjoint row bands processed concurrently.
type Filter struct {
	// Workers bounds the number of bands processed at once. Values <= 0 use GOMAXPROCS.
	Workers int
}

// NewFilter creates a Filter using at most workers goroutines.
func NewFilter(workers int) *Filter {
	return &Filter{Workers: workers}
}

// Apply thresholds src into a new buffer of the same size. src is never modified.
//
// Every pixel's R, G and B values are tested against their channel range (see
// ChannelRange.Contains); each test contributes 255 on pass and 0 on fail. The
// output intensity is (r+g+b)/3 with truncating integer division, which is
// always exactly 0, 85, 170 or 255. The output pixel is (avg, avg, avg, A).
func Apply(src *PixelBuffer, cfg ThresholdConfig) (*PixelBuffer, error) {
	return (&Filter{Workers: 1}).Apply(context.Background(), src, cfg)
}

// ApplyInPlace thresholds buf, overwriting its pixels. The resulting bytes are
// the same as those returned by Apply.
func ApplyInPlace(buf *PixelBuffer, cfg ThresholdConfig) error {
	return (&Filter{Workers: 1}).ApplyInPlace(context.Background(), buf, cfg)
}

// Apply is the concurrent form of the package-level Apply. The result is
// returned only once every row has been processed; if ctx is cancelled first,
// ctx.Err() is returned and no buffer.
func (f *Filter) Apply(ctx context.Context, src *PixelBuffer, cfg ThresholdConfig) (*PixelBuffer, error) {
	if err := checkInput(src, cfg); err != nil {
		return nil, err
	}
	dst := NewPixelBuffer(src.Width, src.Height)
	if err := f.run(ctx, src, dst, cfg); err != nil {
		return nil, err
	}
	return dst, nil
}

// ApplyInPlace is the concurrent form of the package-level ApplyInPlace. On
// cancellation buf may hold a mix of filtered and unfiltered rows.
func (f *Filter) ApplyInPlace(ctx context.Context, buf *PixelBuffer, cfg ThresholdConfig) error {
	if err := checkInput(buf, cfg); err != nil {
		return err
	}
	return f.run(ctx, buf, buf, cfg)
}

func checkInput(buf *PixelBuffer, cfg ThresholdConfig) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	return cfg.Validate()
}

func (f *Filter) workers() int {
	if f == nil || f.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return f.Workers
}

// bands splits height rows into at most n contiguous [start, end) ranges.
func bands(height, n int) [][2]int {
	if n > height {
		n = height
	}
	if n > 1 && height/n < minBandRows {
		n = max(1, height/minBandRows)
	}
	size := (height + n - 1) / n
	out := make([][2]int, 0, n)
	for start := 0; start < height; start += size {
		out = append(out, [2]int{start, min(start+size, height)})
	}
	return out
}

func (f *Filter) run(ctx context.Context, src, dst *PixelBuffer, cfg ThresholdConfig) error {
	workers := f.workers()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, band := range bands(src.Height, workers) {
		if gctx.Err() != nil {
			// Stop scheduling: a band failed or ctx was cancelled.
			break
		}
		y0, y1 := band[0], band[1]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := thresholdBand(src.rows(y0, y1), dst.rows(y0, y1), y1-y0, src.Width, cfg); err != nil {
				return fmt.Errorf("rows %d-%d: %w", y0, y1, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// Nothing failed, but scheduling may have stopped early on cancellation.
	return ctx.Err()
}

// thresholdBand filters one row band. src and dst may be the same slice.
func thresholdBand(src, dst []byte, rows, cols int, cfg ThresholdConfig) error {
	in, err := NewMatFromRGBA(src, rows, cols)
	if err != nil {
		return err
	}
	defer in.Close()

	planes := splitChannels(in)
	defer func() {
		for i := range planes {
			planes[i].Close()
		}
	}()

	var masks [3]Mat
	for i, ch := range Channels {
		masks[i] = NewMat()
		defer masks[i].Close()
		channelMask(planes[i], cfg.Range(ch), &masks[i])
	}

	gray := NewMat()
	defer gray.Close()
	averageMasks(masks[0], masks[1], masks[2], &gray)

	out := NewMat()
	defer out.Close()
	mergeChannels([4]Mat{gray, gray, gray, planes[3]}, &out)
	if out.Empty() || out.Rows() != rows || out.Cols() != cols {
		return fmt.Errorf("band result is %dx%d, want %dx%d", out.Cols(), out.Rows(), cols, rows)
	}
	out.CopyBytesTo(dst)
	return nil
}
