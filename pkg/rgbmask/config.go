package rgbmask

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseConfig reads a ThresholdConfig from a single YAML document. Channels
// missing from the document keep the full range.
//
//	red:   {min: 200, max: 50}
//	green: {min: 0, max: 255}
func ParseConfig(data []byte) (ThresholdConfig, error) {
	cfg := DefaultThresholdConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return ThresholdConfig{}, fmt.Errorf("parse threshold config: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return ThresholdConfig{}, fmt.Errorf("parse threshold config: %w", err)
		}
		return ThresholdConfig{}, errors.New("parse threshold config: expected a single YAML document")
	}
	if err := cfg.Validate(); err != nil {
		return ThresholdConfig{}, err
	}
	return cfg, nil
}

// LoadConfig reads a ThresholdConfig from a YAML file.
func LoadConfig(path string) (ThresholdConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ThresholdConfig{}, fmt.Errorf("read threshold config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return ThresholdConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML in the format read by ParseConfig.
func MarshalConfig(cfg ThresholdConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode threshold config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
