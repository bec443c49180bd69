package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the on-disk shape of a shift settings import.
type SettingsFile struct {
	Shift         ShiftImport     `json:"shift" yaml:"shift"`
	Breaks        []BreakImport   `json:"breaks,omitempty" yaml:"breaks,omitempty"`
	ControlPoints []string        `json:"control_points,omitempty" yaml:"control_points,omitempty"`
	Targets       TargetsImport   `json:"targets" yaml:"targets"`
	Speeds        SpeedsImport    `json:"speeds" yaml:"speeds"`
	LastHour      *LastHourImport `json:"last_hour,omitempty" yaml:"last_hour,omitempty"`
}

type ShiftImport struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

type BreakImport struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

type TargetsImport struct {
	ExpectedOrders int `json:"expected_orders" yaml:"expected_orders"`
}

// SpeedsImport carries per-process speeds. Uniform, when set, applies to
// both processes unless a process-specific value is also given.
type SpeedsImport struct {
	Uniform *float64 `json:"uniform,omitempty" yaml:"uniform,omitempty"`
	Picking *float64 `json:"picking,omitempty" yaml:"picking,omitempty"`
	Packing *float64 `json:"packing,omitempty" yaml:"packing,omitempty"`
}

type LastHourImport struct {
	Staff int `json:"staff" yaml:"staff"`
}

// LoadSettingsFile reads a settings file. The extension picks the decoder:
// .json uses JSON, everything else is treated as YAML.
func LoadSettingsFile(path string) (*SettingsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSettings(data, formatFor(path))
}

// Format names a supported settings encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// ParseSettings decodes raw settings in the given format.
func ParseSettings(data []byte, format Format) (*SettingsFile, error) {
	var f SettingsFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing settings file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing settings file: %w", err)
		}
	}
	return &f, nil
}
