package plugin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DescriptorExt is the file extension of plugin descriptor files.
const DescriptorExt = ".adsp"

// Descriptor mirrors the JSON layout of an .adsp plugin descriptor file.
// Fields not listed here are ignored.
type Descriptor struct {
	Name    string `json:"pluginName"`
	Title   string `json:"pluginTitle"`
	Tagline string `json:"pluginTagline"`
	Version string `json:"pluginVersion"`
	Code    string `json:"pluginCode"`

	// Marketing copy
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Unique           string `json:"unique"`
	Problem          string `json:"problem"`
	Wow              string `json:"wow"`
	Personality      string `json:"personality"`
	OneWord          string `json:"one_word"`

	// Technical info
	Category     []string `json:"category"`
	IntendedUse  []string `json:"intended_use"`
	InputType    string   `json:"input_type"`
	HasSidechain bool     `json:"has_sidechain"`
	TechSummary  string   `json:"tech_summary"`

	// Visual/branding
	HighlightColor []int     `json:"highlightColor"`
	PluginSize     []float64 `json:"pluginSize"` // [width, height] in pixels

	// Parameters and UI components
	KeyParameters []map[string]any `json:"key_parameters"`
	Components    []map[string]any `json:"components"`

	Changelog    []string `json:"changelog"`
	SourceFolder string   `json:"source_folder"`

	// FilePath is where the descriptor was loaded from; not serialized back.
	FilePath string `json:"-"`
}

// ParseFile loads and parses a plugin descriptor. The file must carry the
// .adsp extension. A missing or malformed file fails without producing a
// partial descriptor.
func ParseFile(path string) (*Descriptor, error) {
	if strings.ToLower(filepath.Ext(path)) != DescriptorExt {
		return nil, fmt.Errorf("not a plugin descriptor: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w", filepath.Base(path), err)
	}

	if d.Name == "" {
		// Fall back to the file stem, like an untitled import.
		base := filepath.Base(path)
		d.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	d.FilePath = path
	return &d, nil
}

// AspectRatio returns the plugin window's width/height ratio from the
// pluginSize pair. Missing, malformed, or zero-height values are errors.
func (d *Descriptor) AspectRatio() (float32, error) {
	w, h, err := d.Dimensions()
	if err != nil {
		return 0, err
	}
	return float32(w / h), nil
}

// Dimensions returns the plugin window size in pixels.
func (d *Descriptor) Dimensions() (width, height float64, err error) {
	if len(d.PluginSize) != 2 {
		return 0, 0, fmt.Errorf("descriptor has no pluginSize pair")
	}
	w, h := d.PluginSize[0], d.PluginSize[1]
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid pluginSize %vx%v", w, h)
	}
	return w, h, nil
}

// Company extracts the company name from the descriptor's header components.
func (d *Descriptor) Company() string {
	for _, comp := range d.Components {
		if t, _ := comp["type"].(string); t == "header_company" {
			if name, _ := comp["display_name"].(string); name != "" {
				return name
			}
		}
	}
	return ""
}

// DisplayTitle returns the title, falling back to the plugin name.
func (d *Descriptor) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}
