// ABOUTME: Screen definition files in YAML, TOML, or JSON
// ABOUTME: Loads a wall config plus wiring preferences over defaults and writes them back

package screenfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/markalston/led-wall-calculator/backend/models"
	"gopkg.in/yaml.v3"
)

// Format is a supported file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml, .toml, and .json
var ErrUnsupportedFormat = errors.New("unsupported screen file format")

// Wiring holds the traversal preferences stored next to a screen
type Wiring struct {
	StartCorner models.StartCorner   `json:"start_corner" yaml:"start_corner" toml:"start_corner"`
	Pattern     models.WiringPattern `json:"pattern" yaml:"pattern" toml:"pattern"`
	BreakerAmps int                  `json:"breaker_amps,omitempty" yaml:"breaker_amps,omitempty" toml:"breaker_amps,omitempty"`
}

// File is one saved wall
type File struct {
	Name   string              `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Screen models.ScreenConfig `json:"screen" yaml:"screen" toml:"screen"`
	Wiring Wiring              `json:"wiring" yaml:"wiring" toml:"wiring"`
}

// Default returns the built-in wall wired vertically from the top-left corner
func Default() File {
	return File{
		Screen: models.DefaultScreenConfig(),
		Wiring: Wiring{StartCorner: models.TopLeft, Pattern: models.PatternVertical},
	}
}

// FormatFor picks the encoding from a path's extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads a screen file. Fields missing from the file keep their defaults.
func Load(path string) (File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read screen file: %w", err)
	}
	return Decode(data, format)
}

// Decode parses data in the given format over the defaults and validates the result
func Decode(data []byte, format Format) (File, error) {
	f := Default()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		_, err = toml.Decode(string(data), &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return File{}, fmt.Errorf("failed to parse %s screen file: %w", format, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the screen config and the wiring names
func (f File) Validate() error {
	if err := f.Screen.Validate(); err != nil {
		return fmt.Errorf("invalid screen: %w", err)
	}
	if c := f.Wiring.StartCorner; c != "" && models.ParseStartCorner(string(c)) != c {
		return fmt.Errorf("invalid wiring: unknown start corner %q", c)
	}
	if p := f.Wiring.Pattern; p != "" && models.ParseWiringPattern(string(p)) != p {
		return fmt.Errorf("invalid wiring: unknown pattern %q", p)
	}
	if f.Wiring.BreakerAmps < 0 {
		return fmt.Errorf("invalid wiring: breaker_amps must not be negative, got %d", f.Wiring.BreakerAmps)
	}
	return nil
}

// Encode serializes f in the given format
func Encode(f File, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Save writes f to path in the format matching its extension
func Save(path string, f File) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, format)
	if err != nil {
		return fmt.Errorf("failed to encode screen file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write screen file: %w", err)
	}
	return nil
}
