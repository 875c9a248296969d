package rgbmask

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// PreviewOptions controls RenderPreview.
type PreviewOptions struct {
	// Width of the whole preview in pixels. Defaults to 800.
	Width int
	// FontSize in points for captions. Zero uses the built-in 7x13 bitmap font.
	FontSize float64
}

const (
	defaultPreviewWidth = 800
	previewGap          = 8
	previewMargin       = 10
)

// RenderPreviewFile renders the preview and writes it as JPEG to outputPath.
func RenderPreviewFile(outputPath string, src, mask *PixelBuffer, cfg ThresholdConfig, opts PreviewOptions) error {
	img, err := RenderPreview(src, mask, cfg, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create preview file: %w", err)
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// RenderPreviewBytes renders the preview and returns it as JPEG bytes.
func RenderPreviewBytes(src, mask *PixelBuffer, cfg ThresholdConfig, opts PreviewOptions) ([]byte, error) {
	img, err := RenderPreview(src, mask, cfg, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPreview draws the source and its mask side by side, followed by a
// caption strip listing the thresholds and mask coverage.
func RenderPreview(src, mask *PixelBuffer, cfg ThresholdConfig, opts PreviewOptions) (*image.RGBA, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("preview source: %w", err)
	}
	if err := mask.Validate(); err != nil {
		return nil, fmt.Errorf("preview mask: %w", err)
	}
	if src.Width != mask.Width || src.Height != mask.Height {
		return nil, fmt.Errorf("%w: source %dx%d, mask %dx%d", ErrDimensionMismatch, src.Width, src.Height, mask.Width, mask.Height)
	}

	face, err := previewFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	totalW := opts.Width
	if totalW <= 0 {
		totalW = defaultPreviewWidth
	}
	panelW := (totalW - previewGap) / 2
	if panelW < 1 {
		return nil, fmt.Errorf("preview width %d too small", totalW)
	}
	panelH := max(1, src.Height*panelW/src.Width)

	lineH := face.Metrics().Height.Ceil() + 4
	captions := previewCaptions(cfg, Summarize(mask))
	captionH := previewMargin*2 + lineH*len(captions)

	img := image.NewRGBA(image.Rect(0, 0, totalW, panelH+captionH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{24, 24, 24, 255}), image.Point{}, draw.Src)

	left := image.Rect(0, 0, panelW, panelH)
	right := image.Rect(panelW+previewGap, 0, panelW*2+previewGap, panelH)
	draw.ApproxBiLinear.Scale(img, left, src.ToImage(), src.Bounds(), draw.Over, nil)
	draw.NearestNeighbor.Scale(img, right, mask.ToImage(), mask.Bounds(), draw.Over, nil)

	textColor := color.RGBA{220, 220, 220, 255}
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range captions {
		drawText(img, face, line, previewMargin, panelH+previewMargin+ascent+i*lineH, textColor)
	}

	return img, nil
}

// previewCaptions labels each channel the way the slider panel did.
func previewCaptions(cfg ThresholdConfig, stats MaskStats) []string {
	lines := make([]string, 0, len(Channels)+1)
	for _, ch := range Channels {
		r := cfg.Range(ch)
		line := fmt.Sprintf("%s Min Threshold: %d   %s Max Threshold: %d", ch, r.Min, ch, r.Max)
		if r.Inverted() {
			line += "   (wrapped)"
		}
		lines = append(lines, line)
	}
	lines = append(lines, fmt.Sprintf("Coverage: %.1f%% of %d pixels", stats.Coverage()*100, stats.Total))
	return lines
}

func previewFace(size float64) (font.Face, error) {
	if size <= 0 {
		return basicfont.Face7x13, nil
	}
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse caption font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// drawText draws a string with its baseline at (x, y).
func drawText(img *image.RGBA, face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
