//go:build js && wasm

package main

import (
	"fmt"
	"math"
	"syscall/js"

	rm "rgbmask/pkg/rgbmask"
)

var (
	lastSource *rm.PixelBuffer
	lastMask   *rm.PixelBuffer
	lastConfig rm.ThresholdConfig
)

func main() {
	js.Global().Set("applyThreshold", js.FuncOf(applyThreshold))
	js.Global().Set("renderPreview", js.FuncOf(renderPreview))
	select {} // block forever
}

// applyThreshold(data, width, height, thresholds) filters canvas ImageData
// pixels. thresholds has the shape {r: [min, max], g: [min, max], b: [min, max]};
// missing channels keep the full range.
func applyThreshold(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResult("usage: applyThreshold(data, width, height, thresholds)")
	}

	jsBytes := args[0]
	length := jsBytes.Get("length").Int()
	src := &rm.PixelBuffer{
		Width:  args[1].Int(),
		Height: args[2].Int(),
		Pix:    make([]byte, length),
	}
	js.CopyBytesToGo(src.Pix, jsBytes)

	cfg := rm.DefaultThresholdConfig()
	if len(args) >= 4 && args[3].Type() == js.TypeObject {
		var err error
		if cfg, err = parseThresholds(args[3]); err != nil {
			return errorResult(err.Error())
		}
	}

	mask, err := rm.Apply(src, cfg)
	if err != nil {
		return errorResult("threshold error: " + err.Error())
	}
	lastSource, lastMask, lastConfig = src, mask, cfg

	out := js.Global().Get("Uint8ClampedArray").New(len(mask.Pix))
	js.CopyBytesToJS(out, mask.Pix)

	stats := rm.Summarize(mask)
	levels := make([]interface{}, len(stats.Levels))
	for i, n := range stats.Levels {
		levels[i] = n
	}
	return js.ValueOf(map[string]interface{}{
		"data":   out,
		"width":  mask.Width,
		"height": mask.Height,
		"stats": map[string]interface{}{
			"total":    stats.Total,
			"levels":   levels,
			"coverage": stats.Coverage(),
		},
	})
}

func parseThresholds(obj js.Value) (rm.ThresholdConfig, error) {
	cfg := rm.DefaultThresholdConfig()
	keys := map[rm.Channel]string{rm.Red: "r", rm.Green: "g", rm.Blue: "b"}
	for _, ch := range rm.Channels {
		pair := obj.Get(keys[ch])
		if pair.IsUndefined() || pair.IsNull() {
			continue
		}
		if pair.Type() != js.TypeObject || pair.Get("length").Int() != 2 {
			return rm.ThresholdConfig{}, fmt.Errorf("thresholds.%s: expected [min, max]", keys[ch])
		}
		lo, err := boundValue(pair.Index(0))
		if err != nil {
			return rm.ThresholdConfig{}, fmt.Errorf("thresholds.%s[0]: %w", keys[ch], err)
		}
		hi, err := boundValue(pair.Index(1))
		if err != nil {
			return rm.ThresholdConfig{}, fmt.Errorf("thresholds.%s[1]: %w", keys[ch], err)
		}
		cfg = cfg.WithRange(ch, rm.ChannelRange{Min: lo, Max: hi})
	}
	return cfg, nil
}

// boundValue accepts integral JS numbers only. Range checks happen in Apply.
func boundValue(v js.Value) (int, error) {
	if v.Type() != js.TypeNumber {
		return 0, fmt.Errorf("%w: not a number", rm.ErrInvalidRange)
	}
	f := v.Float()
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v is not an integer bound", rm.ErrInvalidRange, f)
	}
	return int(f), nil
}

func renderPreview(this js.Value, args []js.Value) interface{} {
	if lastMask == nil {
		return js.Null()
	}

	jpegBytes, err := rm.RenderPreviewBytes(lastSource, lastMask, lastConfig, rm.PreviewOptions{})
	if err != nil {
		return js.Null()
	}

	uint8Array := js.Global().Get("Uint8Array").New(len(jpegBytes))
	js.CopyBytesToJS(uint8Array, jpegBytes)
	return uint8Array
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": msg,
	})
}
