package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	rm "rgbmask/pkg/rgbmask"
)

type options struct {
	configPath  string
	outputPath  string
	previewPath string
	workers     int
	fontSize    float64
	bounds      [3][2]int // [channel][min, max]
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newCommand(&options{})
}

func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rgbmask <input-file>",
		Short:         "Threshold an image into a mask by per-channel RGB ranges",
		Long:          "Tests each pixel's red, green and blue values against [min, max] ranges.\nA min greater than max wraps around: values <= max or >= min pass.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], cmd.Flags(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML threshold config; explicit flags override it")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "output PNG path (default <input>-mask.png)")
	flags.StringVar(&opts.previewPath, "preview", "", "write a side-by-side JPEG preview to this path")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent row bands (0 = GOMAXPROCS)")
	flags.Float64Var(&opts.fontSize, "font-size", 0, "preview caption size in points (0 = bitmap font)")
	for _, ch := range rm.Channels {
		name := strings.ToLower(ch.String())
		flags.IntVar(&opts.bounds[ch][0], name+"-min", 0, ch.String()+" min threshold (0-255)")
		flags.IntVar(&opts.bounds[ch][1], name+"-max", 255, ch.String()+" max threshold (0-255)")
	}
	return cmd
}

// thresholds merges the config file with explicitly set flags.
func thresholds(flags *pflag.FlagSet, opts *options) (rm.ThresholdConfig, error) {
	cfg := rm.DefaultThresholdConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = rm.LoadConfig(opts.configPath); err != nil {
			return rm.ThresholdConfig{}, err
		}
	}
	for _, ch := range rm.Channels {
		name := strings.ToLower(ch.String())
		if flags.Changed(name + "-min") {
			cfg = cfg.WithMin(ch, opts.bounds[ch][0])
		}
		if flags.Changed(name + "-max") {
			cfg = cfg.WithMax(ch, opts.bounds[ch][1])
		}
	}
	if err := cfg.Validate(); err != nil {
		return rm.ThresholdConfig{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, inputFilePath string, flags *pflag.FlagSet, opts *options) error {
	cfg, err := thresholds(flags, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Loading: %s\n", inputFilePath)
	src, err := loadImage(inputFilePath)
	if err != nil {
		return err
	}

	startTime := time.Now()
	mask, err := rm.NewFilter(opts.workers).Apply(ctx, src, cfg)
	if err != nil {
		return fmt.Errorf("applying thresholds: %w", err)
	}
	elapsed := time.Since(startTime)

	outputPath := opts.outputPath
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "-mask.png"
	}
	if err := writePNG(outputPath, mask); err != nil {
		return err
	}
	if opts.previewPath != "" {
		previewOpts := rm.PreviewOptions{FontSize: opts.fontSize}
		if err := rm.RenderPreviewFile(opts.previewPath, src, mask, cfg, previewOpts); err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
	}

	stats := rm.Summarize(mask)
	fmt.Println()
	fmt.Printf("=== Threshold Results (%.1fms) ===\n", float64(elapsed.Microseconds())/1000)
	fmt.Printf("  Image size:      %d x %d\n", mask.Width, mask.Height)
	for _, ch := range rm.Channels {
		r := cfg.Range(ch)
		note := ""
		if r.Inverted() {
			note = "  (wrapped)"
		}
		fmt.Printf("  %-6s min=%3d  max=%3d%s\n", ch, r.Min, r.Max, note)
	}
	fmt.Println("  ---")
	for i, level := range rm.MaskLevels {
		fmt.Printf("  %d/3 pass (%3d): %d\n", i, level, stats.Levels[i])
	}
	fmt.Printf("  Coverage:        %.2f%%\n", stats.Coverage()*100)
	fmt.Printf("  Mask:            %s\n", outputPath)
	if opts.previewPath != "" {
		fmt.Printf("  Preview:         %s\n", opts.previewPath)
	}
	fmt.Println("==============================")

	return nil
}

func writePNG(path string, buf *rm.PixelBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mask file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, buf.ToImage()); err != nil {
		return fmt.Errorf("encoding mask: %w", err)
	}
	return f.Close()
}
