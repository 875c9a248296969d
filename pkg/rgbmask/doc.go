// Package rgbmask turns RGBA rasters into masks by testing each pixel's red,
// green and blue values against independent [min, max] ranges.
//
// # Ranges
//
// A ChannelRange with Min <= Max passes values in [Min, Max]. With Min > Max
// the range wraps around the 0..255 value space and passes values in
// [0, Max] and [Min, 255]:
//
//	cfg := rgbmask.DefaultThresholdConfig().
//		WithMin(rgbmask.Red, 200).
//		WithMax(rgbmask.Red, 50)
//
// # Output
//
// Each channel test contributes 255 on pass and 0 on fail. The three results
// are averaged with truncating integer division, so a mask pixel is always
// 0, 85, 170 or 255 on R, G and B, and keeps the source alpha.
//
//	mask, err := rgbmask.Apply(buf, cfg)
//
// Filter splits a buffer into row bands and processes them concurrently.
//
// # Backends
//
// By default band processing runs on OpenCV through gocv. Building with the
// purego tag (or for js/wasm) selects a pure Go implementation with identical output.
package rgbmask
